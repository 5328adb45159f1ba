package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company name already taken")
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id string) (*models.Company, error)
	FindByName(db *gorm.DB, name string) (*models.Company, error)
	FindByCreator(db *gorm.DB, userID string) (*models.Company, error)
	Update(db *gorm.DB, company *models.Company) error
	// GetOrCreate returns the company with the given name, creating it owned
	// by userID when absent (recruiter signup flow).
	GetOrCreate(db *gorm.DB, name, userID string) (*models.Company, error)
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	var existing models.Company
	if err := db.Where("name = ?", company.Name).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByCreator(db *gorm.DB, userID string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "created_by_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Update(db *gorm.DB, company *models.Company) error {
	err := db.Save(company).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCompanyAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrCompanyAlreadyExists
	}
	return err
}

func (r *CompanyRepositoryImpl) GetOrCreate(db *gorm.DB, name, userID string) (*models.Company, error) {
	company, err := r.FindByName(db, name)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, ErrCompanyNotFound) {
		return nil, err
	}

	company = &models.Company{
		Name:        name,
		CreatedByID: &userID,
	}
	if err := db.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}
