package api

import (
	"net/http"

	reqdto "household-services/internal/handler/dto/request"
	resdto "household-services/internal/handler/dto/response"
	"household-services/internal/handler/httperr"
	"household-services/internal/handler/middleware"
	"household-services/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementUseCase usecase.AnnouncementUseCase
}

func NewAnnouncementHandler(announcementUseCase usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUseCase: announcementUseCase,
	}
}

// @Summary Broadcast announcement
// @Description Push a message to every connected client
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AnnouncementRequest true "Announcement"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/announcements [post]
func (h *AnnouncementHandler) Announce(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Message is required", nil)
		return
	}

	if err := h.announcementUseCase.Announce(c.Request.Context(), identity, req.Message); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.MessageResponse{Message: "Announcement sent"})
}
