package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/inventory/usecases"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

type SparePartHandler struct {
	createSparePartUC usecases.CreateSparePartExecutor
	updateStockUC     usecases.UpdateSparePartStockExecutor
	getSparePartUC    usecases.GetSparePartExecutor
	listSparePartsUC  usecases.ListSparePartsExecutor
	deleteSparePartUC usecases.DeleteSparePartExecutor
	logger            logger.Interface
}

func NewSparePartHandler(
	createSparePartUC usecases.CreateSparePartExecutor,
	updateStockUC usecases.UpdateSparePartStockExecutor,
	getSparePartUC usecases.GetSparePartExecutor,
	listSparePartsUC usecases.ListSparePartsExecutor,
	deleteSparePartUC usecases.DeleteSparePartExecutor,
	logger logger.Interface,
) *SparePartHandler {
	return &SparePartHandler{
		createSparePartUC: createSparePartUC,
		updateStockUC:     updateStockUC,
		getSparePartUC:    getSparePartUC,
		listSparePartsUC:  listSparePartsUC,
		deleteSparePartUC: deleteSparePartUC,
		logger:            logger,
	}
}

type CreateSparePartRequest struct {
	PartNo       string     `json:"part_no" binding:"required"`
	PartName     string     `json:"part_name" binding:"required"`
	PartBarcode  string     `json:"part_barcode" binding:"required"`
	Quantity     int        `json:"quantity" binding:"min=0"`
	MinStock     int        `json:"min_stock" binding:"min=0"`
	MaxStock     int        `json:"max_stock" binding:"min=0"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	LeadTimeDays int        `json:"lead_time_days" binding:"min=0"`
	StorageType  string     `json:"storage_type" binding:"required,oneof=cold regular"`
}

func (h *SparePartHandler) CreateSparePart(c *gin.Context) {
	var req CreateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create spare part", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateSparePartCommand{
		PartNo:       req.PartNo,
		PartName:     req.PartName,
		PartBarcode:  req.PartBarcode,
		Quantity:     req.Quantity,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		ExpiryDate:   req.ExpiryDate,
		LeadTimeDays: req.LeadTimeDays,
		StorageType:  req.StorageType,
	}

	result, err := h.createSparePartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.SparePart, "spare part created successfully")
}

type UpdateSparePartStockRequest struct {
	Quantity *int `json:"quantity"`
	MinStock *int `json:"min_stock"`
	MaxStock *int `json:"max_stock"`
}

func (h *SparePartHandler) UpdateStock(c *gin.Context) {
	partID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSparePartStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateSparePartStockCommand{
		PartID:   partID,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		MaxStock: req.MaxStock,
	}

	result, err := h.updateStockUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "stock updated", result.SparePart)
}

func (h *SparePartHandler) GetSparePart(c *gin.Context) {
	partID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSparePartUC.Execute(c.Request.Context(), usecases.GetSparePartQuery{PartID: partID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.SparePart)
}

// LookupSparePart resolves a part by part number or barcode query. The
// barcode path backs the warehouse scanner flow.
func (h *SparePartHandler) LookupSparePart(c *gin.Context) {
	query := usecases.GetSparePartQuery{
		PartNo:  c.Query("part_no"),
		Barcode: c.Query("barcode"),
	}

	result, err := h.getSparePartUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.SparePart)
}

func (h *SparePartHandler) ListSpareParts(c *gin.Context) {
	query := usecases.ListSparePartsQuery{
		StorageType:   c.Query("storage_type"),
		BelowMinStock: c.Query("below_min_stock") == "true",
		Page:          utils.ParseIntQuery(c, "page", 1),
		PageSize:      utils.ParseIntQuery(c, "page_size", 20),
	}

	result, err := h.listSparePartsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.SpareParts, result.Total, result.Page, result.PageSize)
}

func (h *SparePartHandler) DeleteSparePart(c *gin.Context) {
	partID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteSparePartUC.Execute(c.Request.Context(), usecases.DeleteSparePartCommand{PartID: partID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
