package models

type Company struct {
	BaseModel
	Name           string `gorm:"uniqueIndex;not null"`
	Description    string
	Website        string
	LogoURL        string
	Location       string
	FoundedYear    *int
	EmployeesCount string
	CreatedByID    *string `gorm:"index"`
	CreatedBy      *User   `gorm:"foreignKey:CreatedByID"`
}
