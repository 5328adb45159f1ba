package repositories

import (
	"errors"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillAlreadyExists = errors.New("skill already exists")
)

type SkillRepository interface {
	List(db *gorm.DB) ([]models.Skill, error)
	FindByID(db *gorm.DB, id string) (*models.Skill, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Skill, error)
	Create(db *gorm.DB, skill *models.Skill) error
	Update(db *gorm.DB, skill *models.Skill) error
	Delete(db *gorm.DB, id string) error
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

func (r *SkillRepositoryImpl) List(db *gorm.DB) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Skill, error) {
	var skill models.Skill
	err := db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := db.Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) Create(db *gorm.DB, skill *models.Skill) error {
	var existing models.Skill
	if err := db.Where("name = ?", skill.Name).First(&existing).Error; err == nil {
		return ErrSkillAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(skill).Error
}

func (r *SkillRepositoryImpl) Update(db *gorm.DB, skill *models.Skill) error {
	return db.Save(skill).Error
}

func (r *SkillRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
