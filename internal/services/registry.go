package services

import (
	"jobboard/internal/email"
	"jobboard/internal/repositories"
)

// ServiceContainer wires every service over the shared repository set.
// Handlers receive this once at startup.
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Profile      ProfileService
	Company      CompanyService
	Skill        SkillService
	Job          JobService
	Application  ApplicationService
	Notification NotificationService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	profileRepo := repositories.NewProfileRepository()
	skillRepo := repositories.NewSkillRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := NewNotificationService(notificationRepo, userRepo, emailProvider)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, companyRepo, profileRepo),
		User:         NewUserService(userRepo),
		Profile:      NewProfileService(profileRepo, companyRepo, skillRepo, userRepo),
		Company:      NewCompanyService(companyRepo),
		Skill:        NewSkillService(skillRepo),
		Job:          NewJobService(jobRepo, companyRepo, skillRepo, appRepo),
		Application:  NewApplicationService(appRepo, jobRepo, notificationService),
		Notification: notificationService,
	}
}
