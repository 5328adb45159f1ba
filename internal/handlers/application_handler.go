package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/services"
	"jobboard/internal/services/dto"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// RegisterSeekerRoutes mounts the apply/track/withdraw surface. The
// profile-completion gate wraps this group at the routing layer.
func (h *ApplicationHandler) RegisterSeekerRoutes(jobs, applications *gin.RouterGroup) {
	jobs.POST("/:id/apply", h.Apply)
	applications.GET("/my", h.ListOwn)
	applications.DELETE("/:id", h.Withdraw)
}

// RegisterRecruiterRoutes mounts the applicant review surface.
func (h *ApplicationHandler) RegisterRecruiterRoutes(jobs, applications *gin.RouterGroup) {
	jobs.GET("/:id/applications", h.ListForJob)
	applications.POST("/bulk-status", h.BulkUpdateStatus)
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "job id"
// @Param        body body dto.ApplyRequest true "cover letter"
// @Success      201 {object} dto.ApplicationResponse
// @Router       /jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.applicationService.Apply(h.GetDB(c), user, c.Param("id"), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	page, pageSize := h.PageParams(c)
	resp, err := h.applicationService.ListOwn(h.GetDB(c), user, page, pageSize)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Withdrawal removes the application; re-applying later is
// @Description  allowed.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "application id"
// @Success      200 {object} dto.MessageResponse
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	if err := h.applicationService.Withdraw(h.GetDB(c), user, c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application withdrawn"})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	resp, err := h.applicationService.ListForJob(h.GetDB(c), user, c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BulkUpdateStatus godoc
// @Summary      Move applications to a new status
// @Description  Atomic across the batch. Ids already in the target status
// @Description  are no-ops; disallowed transitions come back in skipped.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.BulkStatusUpdateRequest true "ids and target status"
// @Success      200 {object} dto.BulkStatusUpdateResponse
// @Router       /applications/bulk-status [post]
func (h *ApplicationHandler) BulkUpdateStatus(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req dto.BulkStatusUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.applicationService.BulkUpdateStatus(h.GetDB(c), user, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
