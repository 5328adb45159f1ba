package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/services"
	"jobboard/internal/services/dto"
)

type SkillHandler struct {
	BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{BaseHandler: base, skillService: skillService}
}

func (h *SkillHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *SkillHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary      Skill catalog
// @Tags         skills
// @Produce      json
// @Success      200 {array} dto.SkillResponse
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	resp, err := h.skillService.List(h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.CreateSkillRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.skillService.Create(h.GetDB(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Skill deleted"})
}
