package handlers

import (
	"jobboard/internal/services"
	"jobboard/internal/validator"
)

// AppHandlers gathers every handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Profile      *ProfileHandler
	Company      *CompanyHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Skill        *SkillHandler
	Notification *NotificationHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v, sc.User)
	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		User:         NewUserHandler(base),
		Profile:      NewProfileHandler(base, sc.Profile),
		Company:      NewCompanyHandler(base, sc.Company),
		Job:          NewJobHandler(base, sc.Job),
		Application:  NewApplicationHandler(base, sc.Application),
		Skill:        NewSkillHandler(base, sc.Skill),
		Notification: NewNotificationHandler(base, sc.Notification),
	}
}
