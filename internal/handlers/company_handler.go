package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/services"
	"jobboard/internal/services/dto"
)

type CompanyHandler struct {
	BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companyService: companyService}
}

func (h *CompanyHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id", h.GetByID)
}

func (h *CompanyHandler) RegisterRecruiterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.GetOwn)
	rg.PUT("/me", h.UpdateOwn)
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	resp, err := h.companyService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) GetOwn(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	resp, err := h.companyService.GetOwn(h.GetDB(c), user)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateOwn godoc
// @Summary      Edit the recruiter's company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpdateCompanyRequest true "company fields"
// @Success      200 {object} dto.CompanyResponse
// @Router       /companies/me [put]
func (h *CompanyHandler) UpdateOwn(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.companyService.UpdateOwn(h.GetDB(c), user, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
