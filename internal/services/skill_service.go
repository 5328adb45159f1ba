package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type SkillService interface {
	List(db *gorm.DB) ([]dto.SkillResponse, error)
	Create(db *gorm.DB, req dto.CreateSkillRequest) (*dto.SkillResponse, error)
	Delete(db *gorm.DB, id string) error
}

type SkillServiceImpl struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &SkillServiceImpl{skillRepo: skillRepo}
}

func (s *SkillServiceImpl) List(db *gorm.DB) ([]dto.SkillResponse, error) {
	skills, err := s.skillRepo.List(db)
	if err != nil {
		return nil, err
	}
	return toSkillResponses(skills), nil
}

func (s *SkillServiceImpl) Create(db *gorm.DB, req dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	skill := &models.Skill{Name: req.Name, Category: req.Category}
	if err := s.skillRepo.Create(db, skill); err != nil {
		if errors.Is(err, repositories.ErrSkillAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, err
	}
	resp := dto.SkillResponse{ID: skill.ID, Name: skill.Name, Category: skill.Category}
	return &resp, nil
}

func (s *SkillServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.skillRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}
