package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/services"
	"jobboard/internal/services/dto"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(base BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// RegisterPublicRoutes mounts the browse surface. Optional auth feeds the
// has_applied flag for logged-in seekers.
func (h *JobHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Search)
	rg.GET("/:id", h.GetByID)
}

// RegisterRecruiterRoutes mounts the posting management surface.
func (h *JobHandler) RegisterRecruiterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/my", h.ListOwn)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PATCH("/:id/activate", h.Activate)
	rg.PATCH("/:id/deactivate", h.Deactivate)
}

// Search godoc
// @Summary      Browse jobs
// @Description  Active postings, newest first. Malformed salary or visa
// @Description  filters are ignored rather than rejected.
// @Tags         jobs
// @Produce      json
// @Param        q query string false "keyword over title, description, company"
// @Param        location query string false "location substring"
// @Param        job_type query string false "full_time|part_time|contract|internship"
// @Param        location_type query string false "remote|onsite|hybrid"
// @Param        experience_level query string false "entry|mid|senior|lead"
// @Param        salary_min query string false "minimum salary"
// @Param        salary_max query string false "maximum salary"
// @Param        visa_sponsorship query string false "yes|no"
// @Param        skills query []string false "skill ids, any-of"
// @Success      200 {object} dto.JobListResponse
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindQuery(c, &req) {
		return
	}
	resp, err := h.jobService.Search(h.GetDB(c), req, h.OptionalUser(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Job detail
// @Tags         jobs
// @Produce      json
// @Param        id path string true "job id"
// @Success      200 {object} dto.JobResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	resp, err := h.jobService.GetByID(h.GetDB(c), c.Param("id"), h.OptionalUser(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateJobRequest true "job fields"
// @Success      201 {object} dto.JobResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.jobService.Create(h.GetDB(c), user, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) Update(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.jobService.Update(h.GetDB(c), user, c.Param("id"), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	if err := h.jobService.Delete(h.GetDB(c), user, c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted"})
}

func (h *JobHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *JobHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *JobHandler) setActive(c *gin.Context, active bool) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	resp, err := h.jobService.SetActive(h.GetDB(c), user, c.Param("id"), active)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListOwn godoc
// @Summary      Recruiter's own postings with applicant counts
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MyJobResponse
// @Router       /jobs/my [get]
func (h *JobHandler) ListOwn(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	resp, err := h.jobService.ListOwn(h.GetDB(c), user)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
