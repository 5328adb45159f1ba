package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/logger"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type ProfileService interface {
	GetOwn(db *gorm.DB, user *models.User) (*dto.ProfileResponse, error)
	GetPublic(db *gorm.DB, userID, viewerID string) (*dto.ProfileResponse, error)
	Update(db *gorm.DB, user *models.User, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Complete(db *gorm.DB, user *models.User) (*dto.CompletionResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	companyRepo repositories.CompanyRepository
	skillRepo   repositories.SkillRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	companyRepo repositories.CompanyRepository,
	skillRepo repositories.SkillRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		companyRepo: companyRepo,
		skillRepo:   skillRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) GetOwn(db *gorm.DB, user *models.User) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetOrCreate(db, user.ID)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(profile, user.Role)
	return &resp, nil
}

// GetPublic returns another user's profile. Private profiles render as not
// found for everyone but their owner.
func (s *ProfileServiceImpl) GetPublic(db *gorm.DB, userID, viewerID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if profile.Visibility == models.VisibilityPrivate && userID != viewerID {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	owner, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}

	resp := toProfileResponse(profile, owner.Role)
	return &resp, nil
}

// Update applies the present fields, replaces skills when skill_ids is sent,
// and keeps User.ProfileCompleted in sync with the completeness contract.
func (s *ProfileServiceImpl) Update(db *gorm.DB, user *models.User, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	var profile *models.Profile

	err := transact(db, func(tx *gorm.DB) error {
		var err error
		profile, err = s.profileRepo.GetOrCreate(tx, user.ID)
		if err != nil {
			return err
		}

		applyProfileUpdate(profile, req)

		if err := s.profileRepo.Update(tx, profile); err != nil {
			return err
		}

		if req.SkillIDs != nil {
			skills, err := s.skillRepo.FindByIDs(tx, *req.SkillIDs)
			if err != nil {
				return err
			}
			if len(skills) != len(*req.SkillIDs) {
				return apperrors.NewBadRequestError("One or more skill ids do not exist")
			}
			if err := s.profileRepo.ReplaceSkills(tx, profile, skills); err != nil {
				return err
			}
		}

		return s.syncCompleted(tx, user, profile)
	})
	if err != nil {
		return nil, err
	}

	resp := toProfileResponse(profile, user.Role)
	return &resp, nil
}

// Complete re-evaluates the completeness contract and flips the user flag.
// For recruiters the company record is checked through the same predicate:
// name for headline, description for bio, location for location.
func (s *ProfileServiceImpl) Complete(db *gorm.DB, user *models.User) (*dto.CompletionResponse, error) {
	complete, missing, err := s.evaluate(db, user)
	if err != nil {
		return nil, err
	}

	if user.ProfileCompleted != complete {
		if err := s.userRepo.SetProfileCompleted(db, user.ID, complete); err != nil {
			return nil, err
		}
		logger.Info("Profile completion changed", "user_id", user.ID, "completed", complete)
	}

	return &dto.CompletionResponse{ProfileCompleted: complete, MissingFields: missing}, nil
}

func (s *ProfileServiceImpl) syncCompleted(db *gorm.DB, user *models.User, profile *models.Profile) error {
	complete := profile.IsComplete(user.Role)
	if user.Role == models.UserRoleRecruiter {
		var err error
		complete, _, err = s.evaluate(db, user)
		if err != nil {
			return err
		}
	}
	if user.ProfileCompleted == complete {
		return nil
	}
	user.ProfileCompleted = complete
	return s.userRepo.SetProfileCompleted(db, user.ID, complete)
}

func (s *ProfileServiceImpl) evaluate(db *gorm.DB, user *models.User) (bool, []string, error) {
	if user.Role == models.UserRoleRecruiter {
		company, err := s.companyRepo.FindByCreator(db, user.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrCompanyNotFound) {
				return false, []string{"company"}, nil
			}
			return false, nil, err
		}
		missing := missingFields(user.Role, company.Name, company.Description, company.Location, 0)
		return len(missing) == 0, missing, nil
	}

	profile, err := s.profileRepo.GetOrCreate(db, user.ID)
	if err != nil {
		return false, nil, err
	}
	missing := missingFields(user.Role, profile.Headline, profile.Bio, profile.Location, len(profile.Skills))
	return len(missing) == 0, missing, nil
}

func missingFields(role models.UserRole, headline, bio, location string, skillCount int) []string {
	var missing []string
	if headline == "" {
		missing = append(missing, "headline")
	}
	if bio == "" {
		missing = append(missing, "bio")
	}
	if location == "" {
		missing = append(missing, "location")
	}
	if role == models.UserRoleJobSeeker && skillCount == 0 {
		missing = append(missing, "skills")
	}
	return missing
}

func applyProfileUpdate(p *models.Profile, req dto.UpdateProfileRequest) {
	if req.Headline != nil {
		p.Headline = *req.Headline
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	if req.LinkedIn != nil {
		p.LinkedIn = *req.LinkedIn
	}
	if req.GitHub != nil {
		p.GitHub = *req.GitHub
	}
	if req.ResumeURL != nil {
		p.ResumeURL = *req.ResumeURL
	}
	if req.CurrentPosition != nil {
		p.CurrentPosition = *req.CurrentPosition
	}
	if req.YearsExperience != nil {
		p.YearsExperience = req.YearsExperience
	}
	if req.Education != nil {
		p.Education = *req.Education
	}
	if req.Certifications != nil {
		p.Certifications = *req.Certifications
	}
	if req.Visibility != nil {
		p.Visibility = models.Visibility(*req.Visibility)
	}
	if req.OpenToWork != nil {
		p.OpenToWork = *req.OpenToWork
	}
	if req.PreferredSalaryMin != nil {
		p.PreferredSalaryMin = req.PreferredSalaryMin
	}
	if req.PreferredSalaryMax != nil {
		p.PreferredSalaryMax = req.PreferredSalaryMax
	}
}
