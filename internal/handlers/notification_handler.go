package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/middleware"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type NotificationHandler struct {
	BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("/:id/read", h.MarkRead)
	rg.POST("/read-all", h.MarkAllRead)
}

// List godoc
// @Summary      Own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread_only query bool false "only unread"
// @Success      200 {object} dto.NotificationListResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var criteria repositories.NotificationCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.Error(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return
	}
	resp, err := h.notificationService.ListOwn(h.GetDB(c), middleware.GetUserID(c), criteria)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.notificationService.MarkRead(h.GetDB(c), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	err := h.notificationService.MarkAllRead(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All notifications marked as read"})
}
