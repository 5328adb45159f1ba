package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/middleware"
	"jobboard/internal/services"
	"jobboard/internal/services/dto"
)

type ProfileHandler struct {
	BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

// RegisterRoutes mounts the authenticated profile routes. These stay
// reachable with an incomplete profile so users can actually complete it.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.GetOwn)
	rg.PUT("/me", h.UpdateOwn)
	rg.POST("/me/complete", h.Complete)
	rg.GET("/:id", h.GetPublic)
}

// GetOwn godoc
// @Summary      Own profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ProfileResponse
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	resp, err := h.profileService.GetOwn(h.GetDB(c), user)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.profileService.Update(h.GetDB(c), user, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Complete godoc
// @Summary      Re-evaluate profile completeness
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CompletionResponse
// @Router       /profiles/me/complete [post]
func (h *ProfileHandler) Complete(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	resp, err := h.profileService.Complete(h.GetDB(c), user)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetPublic(c *gin.Context) {
	resp, err := h.profileService.GetPublic(h.GetDB(c), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
