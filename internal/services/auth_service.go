package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servora_backend/internal/auth"
	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

type AuthService interface {
	// Register создает пользователя и пустой профиль роли (vendor/waiter)
	// одной транзакцией. Письмо приветствия уходит после коммита.
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(db *gorm.DB, token string) error
	RequestPasswordReset(db *gorm.DB, email string) error
	ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	notification NotificationService
	transact     txRunner
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notification NotificationService,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		notification: notification,
		transact:     gormTransact,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	switch req.Role {
	case models.UserRoleCustomer, models.UserRoleVendor, models.UserRoleWaiter:
	default:
		// админов через публичную регистрацию не создаем
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Name:              req.Name,
		Phone:             req.Phone,
		Role:              req.Role,
		Status:            models.UserStatusActive,
		VerificationToken: uuid.NewString(),
	}

	err = s.transact(db, func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		// Профиль заводится сразу, но до одобрения админом не виден в выдаче
		switch req.Role {
		case models.UserRoleVendor:
			return s.profileRepo.CreateVendorProfile(tx, &models.VendorProfile{
				UserID:       user.ID,
				BusinessName: req.Name,
			})
		case models.UserRoleWaiter:
			return s.profileRepo.CreateWaiterProfile(tx, &models.WaiterProfile{
				UserID:   user.ID,
				FullName: req.Name,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.notification.SendWelcomeEmail(user)

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, User: toUserResponse(user)}, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return nil, apperrors.ErrUserBanned
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, User: toUserResponse(user)}, nil
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return err
	}
	user.IsVerified = true
	user.VerificationToken = ""
	return s.userRepo.Update(db, user)
}

func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, email string) error {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// не раскрываем, существует ли адрес
			return nil
		}
		return err
	}

	exp := time.Now().Add(1 * time.Hour)
	user.ResetToken = uuid.NewString()
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(db, user); err != nil {
		return err
	}

	go s.notification.SendPasswordResetEmail(user, user.ResetToken)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByResetToken(db, req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return err
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	return s.userRepo.Update(db, user)
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.userRepo.Update(db, user)
}

func toUserResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Phone:      u.Phone,
		Role:       u.Role,
		Status:     u.Status,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
