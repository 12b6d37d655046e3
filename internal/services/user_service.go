package services

import (
	"gorm.io/gorm"

	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
)

type UserService interface {
	GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateMe(db *gorm.DB, userID string, name, phone *string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateMe(db *gorm.DB, userID string, name, phone *string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		user.Name = *name
	}
	if phone != nil {
		user.Phone = *phone
	}
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}
