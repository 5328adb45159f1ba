package repositories

import (
	"errors"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	// GetOrCreate returns the user's profile, creating an empty one on first
	// access (lazy creation on the first completion attempt).
	GetOrCreate(db *gorm.DB, userID string) (*models.Profile, error)
	Update(db *gorm.DB, profile *models.Profile) error
	ReplaceSkills(db *gorm.DB, profile *models.Profile, skills []models.Skill) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("Skills").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) GetOrCreate(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := r.FindByUserID(db, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	profile = &models.Profile{
		UserID:     userID,
		Visibility: models.VisibilityPublic,
		OpenToWork: true,
	}
	if err := db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	return db.Omit("Skills").Save(profile).Error
}

func (r *ProfileRepositoryImpl) ReplaceSkills(db *gorm.DB, profile *models.Profile, skills []models.Skill) error {
	if err := db.Model(profile).Association("Skills").Replace(skills); err != nil {
		return err
	}
	profile.Skills = skills
	return nil
}
