package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/ticket/usecases"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	approveTicketUC      usecases.ApproveTicketExecutor
	rejectTicketUC       usecases.RejectTicketExecutor
	claimTicketUC        usecases.ClaimTicketExecutor
	startTicketUC        usecases.StartTicketExecutor
	closeTicketUC        usecases.CloseTicketExecutor
	attachReportUC       usecases.AttachReportExecutor
	editReportUC         usecases.EditReportExecutor
	attachRejectReportUC usecases.AttachRejectReportExecutor
	updateSparePartsUC   usecases.UpdateRequiredSparePartsExecutor
	fillCrocaUC          usecases.FillCrocaExecutor
	deleteTicketUC       usecases.DeleteTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	approveTicketUC usecases.ApproveTicketExecutor,
	rejectTicketUC usecases.RejectTicketExecutor,
	claimTicketUC usecases.ClaimTicketExecutor,
	startTicketUC usecases.StartTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	attachReportUC usecases.AttachReportExecutor,
	editReportUC usecases.EditReportExecutor,
	attachRejectReportUC usecases.AttachRejectReportExecutor,
	updateSparePartsUC usecases.UpdateRequiredSparePartsExecutor,
	fillCrocaUC usecases.FillCrocaExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		approveTicketUC:      approveTicketUC,
		rejectTicketUC:       rejectTicketUC,
		claimTicketUC:        claimTicketUC,
		startTicketUC:        startTicketUC,
		closeTicketUC:        closeTicketUC,
		attachReportUC:       attachReportUC,
		editReportUC:         editReportUC,
		attachRejectReportUC: attachRejectReportUC,
		updateSparePartsUC:   updateSparePartsUC,
		fillCrocaUC:          fillCrocaUC,
		deleteTicketUC:       deleteTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		logger:               logger,
	}
}

type CreateTicketRequest struct {
	AssigneeID        *uint  `json:"assignee_id"`
	Priority          string `json:"priority" binding:"required,oneof=low medium high"`
	AssetID           uint   `json:"asset_id" binding:"required"`
	Description       string `json:"description" binding:"required"`
	WorkOrderKind     string `json:"work_order_kind" binding:"required,oneof=maintenance cleaning accident"`
	RequireSpareParts bool   `json:"require_spare_parts"`
	SparePartIDs      []uint `json:"spare_part_ids"`
	Note              string `json:"note"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateTicketCommand{
		OpenerKind:        middleware.ActorKindFromContext(c).String(),
		OpenerID:          middleware.ActorIDFromContext(c),
		AssigneeID:        req.AssigneeID,
		Priority:          req.Priority,
		AssetID:           req.AssetID,
		Description:       req.Description,
		WorkOrderKind:     req.WorkOrderKind,
		RequireSpareParts: req.RequireSpareParts,
		SparePartIDs:      req.SparePartIDs,
		Note:              req.Note,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created successfully")
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		Statuses:   c.QueryArray("status"),
		Unassigned: c.Query("unassigned") == "true",
		Page:       utils.ParseIntQuery(c, "page", 1),
		PageSize:   utils.ParseIntQuery(c, "page_size", 20),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if priority := c.Query("priority"); priority != "" {
		query.Priority = &priority
	}
	if assetID := utils.ParseIntQuery(c, "asset_id", 0); assetID > 0 {
		id := uint(assetID)
		query.AssetID = &id
	}
	if assigneeID := utils.ParseIntQuery(c, "assignee_id", 0); assigneeID > 0 {
		id := uint(assigneeID)
		query.AssigneeID = &id
	}
	if openerKind := c.Query("opener_kind"); openerKind != "" {
		query.OpenerKind = &openerKind
	}
	if openerID := utils.ParseIntQuery(c, "opener_id", 0); openerID > 0 {
		id := uint(openerID)
		query.OpenerID = &id
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) ApproveTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ApproveTicketCommand{
		TicketID: ticketID,
		AdminID:  middleware.ActorIDFromContext(c),
	}

	result, err := h.approveTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket approved", result)
}

type RejectTicketRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *TicketHandler) RejectTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.RejectTicketCommand{
		TicketID: ticketID,
		AdminID:  middleware.ActorIDFromContext(c),
		Reason:   req.Reason,
	}

	result, err := h.rejectTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket rejected", result)
}

func (h *TicketHandler) ClaimTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ClaimTicketCommand{
		TicketID: ticketID,
		TechID:   middleware.ActorIDFromContext(c),
	}

	result, err := h.claimTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket claimed", result)
}

func (h *TicketHandler) StartTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StartTicketCommand{
		TicketID: ticketID,
		TechID:   middleware.ActorIDFromContext(c),
	}

	result, err := h.startTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket started", result)
}

func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CloseTicketCommand{
		TicketID:  ticketID,
		ActorKind: middleware.ActorKindFromContext(c).String(),
		ActorID:   middleware.ActorIDFromContext(c),
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket closed", result)
}

type AttachReportRequest struct {
	Description    string `json:"description" binding:"required"`
	BeforePhotoURL string `json:"before_photo_url"`
	AfterPhotoURL  string `json:"after_photo_url"`
}

func (h *TicketHandler) AttachReport(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AttachReportCommand{
		TicketID:       ticketID,
		ActorKind:      middleware.ActorKindFromContext(c).String(),
		ActorID:        middleware.ActorIDFromContext(c),
		Description:    req.Description,
		BeforePhotoURL: req.BeforePhotoURL,
		AfterPhotoURL:  req.AfterPhotoURL,
	}

	result, err := h.attachReportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "report attached")
}

func (h *TicketHandler) EditReport(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.EditReportCommand{
		TicketID:       ticketID,
		Description:    req.Description,
		BeforePhotoURL: req.BeforePhotoURL,
		AfterPhotoURL:  req.AfterPhotoURL,
	}

	result, err := h.editReportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "report updated", result)
}

func (h *TicketHandler) AttachRejectReport(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AttachRejectReportCommand{
		TicketID:       ticketID,
		TechID:         middleware.ActorIDFromContext(c),
		Description:    req.Description,
		BeforePhotoURL: req.BeforePhotoURL,
		AfterPhotoURL:  req.AfterPhotoURL,
	}

	result, err := h.attachRejectReportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "reject report attached")
}

type UpdateSparePartsRequest struct {
	RequireSpareParts bool   `json:"require_spare_parts"`
	SparePartIDs      []uint `json:"spare_part_ids"`
}

func (h *TicketHandler) UpdateSpareParts(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSparePartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateRequiredSparePartsCommand{
		TicketID:          ticketID,
		TechID:            middleware.ActorIDFromContext(c),
		RequireSpareParts: req.RequireSpareParts,
		SparePartIDs:      req.SparePartIDs,
	}

	result, err := h.updateSparePartsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "spare part requirements updated", result)
}

type FillCrocaRequest struct {
	CrocaType string  `json:"croca_type" binding:"required,oneof=croca anonymous insurance_expired"`
	Cost      string  `json:"cost" binding:"required"`
	PhotoURL  *string `json:"photo_url"`
}

func (h *TicketHandler) FillCroca(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req FillCrocaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.FillCrocaCommand{
		TicketID:  ticketID,
		CrocaType: req.CrocaType,
		Cost:      req.Cost,
		PhotoURL:  req.PhotoURL,
	}

	result, err := h.fillCrocaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "croca recorded", result)
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
