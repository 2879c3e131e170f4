package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/domain/notification"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

// PresenceHandler lets the push gateway report connection lifecycle for the
// actor it serves. The directory drives delivery filtering downstream.
type PresenceHandler struct {
	directory notification.PresenceDirectory
	logger    logger.Interface
}

func NewPresenceHandler(directory notification.PresenceDirectory, logger logger.Interface) *PresenceHandler {
	return &PresenceHandler{
		directory: directory,
		logger:    logger,
	}
}

func (h *PresenceHandler) Register(c *gin.Context) {
	kind := middleware.ActorKindFromContext(c)
	actorID := middleware.ActorIDFromContext(c)

	var err error
	if kind.IsAdmin() {
		err = h.directory.RegisterAdmin(c.Request.Context(), actorID)
	} else {
		err = h.directory.RegisterTech(c.Request.Context(), actorID)
	}
	if err != nil {
		h.logger.Errorw("failed to register presence",
			"actor_kind", kind.String(),
			"actor_id", actorID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "presence registered", nil)
}

func (h *PresenceHandler) Deregister(c *gin.Context) {
	kind := middleware.ActorKindFromContext(c)
	actorID := middleware.ActorIDFromContext(c)

	var err error
	if kind.IsAdmin() {
		err = h.directory.DeregisterAdmin(c.Request.Context(), actorID)
	} else {
		err = h.directory.DeregisterTech(c.Request.Context(), actorID)
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PresenceHandler) ListAdmins(c *gin.Context) {
	admins, err := h.directory.ConnectedAdmins(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"admin_ids": admins})
}
