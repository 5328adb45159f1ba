package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/middleware"
	"jobboard/internal/services/dto"
)

type UserHandler struct {
	BaseHandler
}

func NewUserHandler(base BaseHandler) *UserHandler {
	return &UserHandler{BaseHandler: base}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.DELETE("/me", h.DeleteMe)
}

// Me godoc
// @Summary      Current account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UserResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	resp, err := h.userService.GetByID(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.userService.Delete(h.GetDB(c), middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted"})
}
