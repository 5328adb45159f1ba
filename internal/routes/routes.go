package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

// RegisterRoutes composes the API surface. Access control is layered here:
// auth, then role, then the profile-completion gate. Routes that must stay
// reachable with an incomplete profile (account, profile editing, the company
// page recruiters complete) simply don't mount the gate.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, userRepo repositories.UserRepository) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	h.Auth.RegisterRoutes(api.Group("/auth"))

	// Public browse surface; optional auth feeds has_applied.
	publicJobs := api.Group("/jobs", middleware.OptionalAuthMiddleware())
	h.Job.RegisterPublicRoutes(publicJobs)
	h.Skill.RegisterPublicRoutes(api.Group("/skills"))
	h.Company.RegisterPublicRoutes(api.Group("/companies"))

	// Authenticated, no completion gate: the account/profile surface is how
	// an incomplete profile gets completed.
	authed := api.Group("", middleware.AuthMiddleware())
	h.User.RegisterRoutes(authed.Group("/users"))
	h.Profile.RegisterRoutes(authed.Group("/profiles"))
	h.Notification.RegisterRoutes(authed.Group("/notifications"))

	recruiterCompanies := api.Group("/companies",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin),
	)
	h.Company.RegisterRecruiterRoutes(recruiterCompanies)

	// Seeker surface behind the completion gate.
	gate := middleware.RequireCompletedProfile(userRepo)
	seekerOnly := middleware.RequireRoles(models.UserRoleJobSeeker)

	seekerJobs := api.Group("/jobs", middleware.AuthMiddleware(), seekerOnly, gate)
	seekerApps := api.Group("/applications", middleware.AuthMiddleware(), seekerOnly, gate)
	h.Application.RegisterSeekerRoutes(seekerJobs, seekerApps)

	// Recruiter surface behind the completion gate.
	recruiterOnly := middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin)

	recruiterJobs := api.Group("/jobs", middleware.AuthMiddleware(), recruiterOnly, gate)
	recruiterApps := api.Group("/applications", middleware.AuthMiddleware(), recruiterOnly, gate)
	h.Job.RegisterRecruiterRoutes(recruiterJobs)
	h.Application.RegisterRecruiterRoutes(recruiterJobs, recruiterApps)

	adminSkills := api.Group("/skills",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleAdmin),
	)
	h.Skill.RegisterAdminRoutes(adminSkills)
}
