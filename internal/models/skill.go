package models

// Skill is a catalog entry referenced, never owned, by jobs and profiles.
type Skill struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null"`
	Category string
}
