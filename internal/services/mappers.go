package services

import (
	"encoding/json"

	"jobboard/internal/models"
	"jobboard/internal/services/dto"
)

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Role:             string(u.Role),
		EmailVerified:    u.EmailVerified,
		ProfileCompleted: u.ProfileCompleted,
		CreatedAt:        u.CreatedAt,
	}
}

func toSkillResponses(skills []models.Skill) []dto.SkillResponse {
	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return out
}

func toCompanyResponse(c *models.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Website:        c.Website,
		LogoURL:        c.LogoURL,
		Location:       c.Location,
		FoundedYear:    c.FoundedYear,
		EmployeesCount: c.EmployeesCount,
	}
}

func toProfileResponse(p *models.Profile, role models.UserRole) dto.ProfileResponse {
	years := 0
	if p.YearsExperience != nil {
		years = *p.YearsExperience
	}
	return dto.ProfileResponse{
		UserID:             p.UserID,
		Headline:           p.Headline,
		Bio:                p.Bio,
		Location:           p.Location,
		Skills:             toSkillResponses(p.Skills),
		Website:            p.Website,
		LinkedIn:           p.LinkedIn,
		GitHub:             p.GitHub,
		ResumeURL:          p.ResumeURL,
		CurrentPosition:    p.CurrentPosition,
		YearsExperience:    years,
		Education:          p.Education,
		Certifications:     p.Certifications,
		Visibility:         string(p.Visibility),
		OpenToWork:         p.OpenToWork,
		PreferredSalaryMin: p.PreferredSalaryMin,
		PreferredSalaryMax: p.PreferredSalaryMax,
		IsComplete:         p.IsComplete(role),
	}
}

func toJobResponse(j *models.Job) dto.JobResponse {
	resp := dto.JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		CompanyName:     j.Employer().Name(),
		Location:        j.Location,
		LocationType:    string(j.LocationType),
		JobType:         string(j.JobType),
		ExperienceLevel: string(j.ExperienceLevel),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		SalaryCurrency:  string(j.SalaryCurrency),
		RequiredSkills:  toSkillResponses(j.RequiredSkills),
		Benefits:        j.Benefits,
		VisaSponsorship: j.VisaSponsorship,
		IsActive:        j.IsActive,
		PostedByID:      j.PostedByID,
		CreatedAt:       j.CreatedAt,
	}
	if emp := j.Employer(); emp.Linked != nil {
		resp.Company = toCompanyResponse(emp.Linked)
	}
	if j.ApplicationDeadline != nil {
		d := j.ApplicationDeadline.Format("2006-01-02")
		resp.ApplicationDeadline = &d
	}
	return resp
}

func toApplicationResponse(a *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		AppliedDate: a.AppliedDate,
		LastUpdated: a.LastUpdated,
	}
	if a.Job != nil {
		job := toJobResponse(a.Job)
		resp.Job = &job
	}
	return resp
}

func toNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:                   n.ID,
		Type:                 string(n.Type),
		Title:                n.Title,
		Message:              n.Message,
		Data:                 json.RawMessage(n.Data),
		IsRead:               n.IsRead,
		ReadAt:               n.ReadAt,
		CreatedAt:            n.CreatedAt,
		RelatedJobID:         n.RelatedJobID,
		RelatedApplicationID: n.RelatedApplicationID,
	}
}
