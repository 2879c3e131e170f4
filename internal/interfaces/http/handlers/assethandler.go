package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/asset/usecases"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

type AssetHandler struct {
	createAssetUC usecases.CreateAssetExecutor
	getAssetUC    usecases.GetAssetExecutor
	listAssetsUC  usecases.ListAssetsExecutor
	deleteAssetUC usecases.DeleteAssetExecutor
	logger        logger.Interface
}

func NewAssetHandler(
	createAssetUC usecases.CreateAssetExecutor,
	getAssetUC usecases.GetAssetExecutor,
	listAssetsUC usecases.ListAssetsExecutor,
	deleteAssetUC usecases.DeleteAssetExecutor,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createAssetUC: createAssetUC,
		getAssetUC:    getAssetUC,
		listAssetsUC:  listAssetsUC,
		deleteAssetUC: deleteAssetUC,
		logger:        logger,
	}
}

type CreateAssetRequest struct {
	AssetNo                 string    `json:"asset_no" binding:"required"`
	Name                    string    `json:"name" binding:"required"`
	Description             string    `json:"description"`
	Lat                     float64   `json:"lat" binding:"min=-90,max=90"`
	Lng                     float64   `json:"lng" binding:"min=-180,max=180"`
	InstallationDate        time.Time `json:"installation_date" binding:"required"`
	CleaningIntervalDays    int       `json:"cleaning_interval_days" binding:"required,min=1"`
	MaintenanceIntervalDays int       `json:"maintenance_interval_days" binding:"required,min=1"`
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateAssetCommand{
		AssetNo:                 req.AssetNo,
		Name:                    req.Name,
		Description:             req.Description,
		Lat:                     req.Lat,
		Lng:                     req.Lng,
		InstallationDate:        req.InstallationDate,
		CleaningIntervalDays:    req.CleaningIntervalDays,
		MaintenanceIntervalDays: req.MaintenanceIntervalDays,
	}

	result, err := h.createAssetUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Asset, "asset created successfully")
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAssetUC.Execute(c.Request.Context(), usecases.GetAssetQuery{AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Asset)
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	query := usecases.ListAssetsQuery{
		Page:     utils.ParseIntQuery(c, "page", 1),
		PageSize: utils.ParseIntQuery(c, "page_size", 20),
	}

	result, err := h.listAssetsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assets, result.Total, result.Page, result.PageSize)
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	assetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteAssetUC.Execute(c.Request.Context(), usecases.DeleteAssetCommand{AssetID: assetID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
