package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type CompanyService interface {
	GetByID(db *gorm.DB, id string) (*dto.CompanyResponse, error)
	GetOwn(db *gorm.DB, user *models.User) (*dto.CompanyResponse, error)
	UpdateOwn(db *gorm.DB, user *models.User, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) GetByID(db *gorm.DB, id string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *CompanyServiceImpl) GetOwn(db *gorm.DB, user *models.User) (*dto.CompanyResponse, error) {
	if !user.IsRecruiter() {
		return nil, apperrors.ErrInvalidUserRole
	}
	company, err := s.companyRepo.FindByCreator(db, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// UpdateOwn edits the recruiter's company, creating it on first write.
func (s *CompanyServiceImpl) UpdateOwn(db *gorm.DB, user *models.User, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !user.IsRecruiter() {
		return nil, apperrors.ErrInvalidUserRole
	}

	var company *models.Company
	err := transact(db, func(tx *gorm.DB) error {
		var err error
		company, err = s.companyRepo.FindByCreator(tx, user.ID)
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			if req.Name == nil || *req.Name == "" {
				return apperrors.NewBadRequestError("Company name is required")
			}
			company, err = s.companyRepo.GetOrCreate(tx, *req.Name, user.ID)
		}
		if err != nil {
			return err
		}

		applyCompanyUpdate(company, req)

		if err := s.companyRepo.Update(tx, company); err != nil {
			if errors.Is(err, repositories.ErrCompanyAlreadyExists) {
				return apperrors.ErrConflict(err, "company", "Company name is already taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCompanyResponse(company), nil
}

func applyCompanyUpdate(c *models.Company, req dto.UpdateCompanyRequest) {
	if req.Name != nil && *req.Name != "" {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Website != nil {
		c.Website = *req.Website
	}
	if req.LogoURL != nil {
		c.LogoURL = *req.LogoURL
	}
	if req.Location != nil {
		c.Location = *req.Location
	}
	if req.FoundedYear != nil {
		c.FoundedYear = req.FoundedYear
	}
	if req.EmployeesCount != nil {
		c.EmployeesCount = *req.EmployeesCount
	}
}
