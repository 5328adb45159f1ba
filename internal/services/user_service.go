package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
	"jobboard/pkg/apperrors"
)

type UserService interface {
	GetByID(db *gorm.DB, userID string) (*dto.UserResponse, error)
	GetModel(db *gorm.DB, userID string) (*models.User, error)
	Delete(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.GetModel(db, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// GetModel returns the full user with profile and company preloaded, for
// callers that need more than the wire shape.
func (s *UserServiceImpl) GetModel(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, userID string) error {
	return transact(db, func(tx *gorm.DB) error {
		if err := s.userRepo.DeleteUserRefreshTokens(tx, userID); err != nil {
			return err
		}
		if err := s.userRepo.Delete(tx, userID); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return err
		}
		return nil
	})
}
