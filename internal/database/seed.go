package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard/internal/auth"
	"jobboard/internal/logger"
	"jobboard/internal/models"
)

// defaultSkills is the starter catalog; admins extend it from there.
var defaultSkills = []models.Skill{
	{Name: "Go", Category: "Languages"},
	{Name: "Python", Category: "Languages"},
	{Name: "JavaScript", Category: "Languages"},
	{Name: "TypeScript", Category: "Languages"},
	{Name: "SQL", Category: "Languages"},
	{Name: "PostgreSQL", Category: "Databases"},
	{Name: "Redis", Category: "Databases"},
	{Name: "Docker", Category: "Infrastructure"},
	{Name: "Kubernetes", Category: "Infrastructure"},
	{Name: "AWS", Category: "Infrastructure"},
	{Name: "React", Category: "Frontend"},
	{Name: "Vue", Category: "Frontend"},
	{Name: "gRPC", Category: "Backend"},
	{Name: "REST API Design", Category: "Backend"},
	{Name: "CI/CD", Category: "Practices"},
	{Name: "Agile", Category: "Practices"},
}

// SeedSkills inserts the starter catalog, skipping names that already exist.
func SeedSkills(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&defaultSkills).Error
}

// SeedFirstAdmin creates the bootstrap admin account once. A second run with
// the same email is a no-op.
func SeedFirstAdmin(db *gorm.DB, adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:            adminEmail,
		PasswordHash:     hash,
		Role:             models.UserRoleAdmin,
		EmailVerified:    true,
		ProfileCompleted: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded first admin", "email", adminEmail)
	return nil
}
