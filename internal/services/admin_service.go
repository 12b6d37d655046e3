package services

import (
	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

// AdminService - модерация и сводка платформы. Роль актора проверяет
// middleware, здесь только доменные действия.
type AdminService interface {
	GetPlatformStats(db *gorm.DB) (*dto.PlatformStatsResponse, error)

	ApproveVendor(db *gorm.DB, profileID string) (*dto.VendorProfileResponse, error)
	ApproveWaiter(db *gorm.DB, profileID string) (*dto.WaiterProfileResponse, error)
	ListPendingVendors(db *gorm.DB, page, pageSize int) (*dto.VendorListResponse, error)
	ListPendingWaiters(db *gorm.DB, page, pageSize int) (*dto.WaiterListResponse, error)

	SetUserStatus(db *gorm.DB, userID string, status models.UserStatus) (*dto.UserResponse, error)
	ListUsers(db *gorm.DB, page, pageSize int) ([]*dto.UserResponse, int64, error)
}

type AdminServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	orderRepo    repositories.OrderRepository
	jobRepo      repositories.JobRepository
	ratingRepo   repositories.RatingRepository
	notification NotificationService
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	orderRepo repositories.OrderRepository,
	jobRepo repositories.JobRepository,
	ratingRepo repositories.RatingRepository,
	notification NotificationService,
) AdminService {
	return &AdminServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		orderRepo:    orderRepo,
		jobRepo:      jobRepo,
		ratingRepo:   ratingRepo,
		notification: notification,
	}
}

func (s *AdminServiceImpl) GetPlatformStats(db *gorm.DB) (*dto.PlatformStatsResponse, error) {
	stats := &dto.PlatformStatsResponse{}

	var err error
	if stats.TotalCustomers, err = s.userRepo.CountByRole(db, models.UserRoleCustomer); err != nil {
		return nil, err
	}
	if stats.TotalVendors, err = s.userRepo.CountByRole(db, models.UserRoleVendor); err != nil {
		return nil, err
	}
	if stats.TotalWaiters, err = s.userRepo.CountByRole(db, models.UserRoleWaiter); err != nil {
		return nil, err
	}
	stats.TotalUsers = stats.TotalCustomers + stats.TotalVendors + stats.TotalWaiters

	if stats.TotalOrders, err = s.orderRepo.CountAll(db); err != nil {
		return nil, err
	}
	if stats.CompletedOrders, err = s.orderRepo.CountByStatus(db, models.OrderStatusCompleted); err != nil {
		return nil, err
	}
	if stats.TotalJobs, err = s.jobRepo.CountAll(db); err != nil {
		return nil, err
	}
	if stats.CompletedJobs, err = s.jobRepo.CountByStatus(db, models.JobStatusCompleted); err != nil {
		return nil, err
	}
	if stats.ActiveRatings, err = s.ratingRepo.CountActive(db); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminServiceImpl) ApproveVendor(db *gorm.DB, profileID string) (*dto.VendorProfileResponse, error) {
	profile, err := s.profileRepo.FindVendorByID(db, profileID)
	if err != nil {
		return nil, err
	}
	if !profile.IsApproved {
		profile.IsApproved = true
		if err := s.profileRepo.UpdateVendorProfile(db, profile); err != nil {
			return nil, err
		}
		if user, err := s.userRepo.FindByID(db, profile.UserID); err == nil {
			go s.notification.NotifyAccountApproved(db, user)
		}
	}
	return toVendorProfileResponse(profile), nil
}

func (s *AdminServiceImpl) ApproveWaiter(db *gorm.DB, profileID string) (*dto.WaiterProfileResponse, error) {
	profile, err := s.profileRepo.FindWaiterByID(db, profileID)
	if err != nil {
		return nil, err
	}
	if !profile.IsApproved {
		profile.IsApproved = true
		if err := s.profileRepo.UpdateWaiterProfile(db, profile); err != nil {
			return nil, err
		}
		if user, err := s.userRepo.FindByID(db, profile.UserID); err == nil {
			go s.notification.NotifyAccountApproved(db, user)
		}
	}
	return toWaiterProfileResponse(profile), nil
}

func (s *AdminServiceImpl) ListPendingVendors(db *gorm.DB, page, pageSize int) (*dto.VendorListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	profiles, total, err := s.profileRepo.FindVendors(db, false, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	resp := &dto.VendorListResponse{
		Vendors:    make([]*dto.VendorProfileResponse, 0),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range profiles {
		if !profiles[i].IsApproved {
			resp.Vendors = append(resp.Vendors, toVendorProfileResponse(&profiles[i]))
		}
	}
	return resp, nil
}

func (s *AdminServiceImpl) ListPendingWaiters(db *gorm.DB, page, pageSize int) (*dto.WaiterListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	profiles, total, err := s.profileRepo.FindWaiters(db, false, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	resp := &dto.WaiterListResponse{
		Waiters:    make([]*dto.WaiterProfileResponse, 0),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range profiles {
		if !profiles[i].IsApproved {
			resp.Waiters = append(resp.Waiters, toWaiterProfileResponse(&profiles[i]))
		}
	}
	return resp, nil
}

func (s *AdminServiceImpl) SetUserStatus(db *gorm.DB, userID string, status models.UserStatus) (*dto.UserResponse, error) {
	switch status {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusBanned:
	default:
		return nil, apperrors.NewBadRequestError("invalid user status")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.UserRoleAdmin {
		// админа не трогаем
		return nil, apperrors.ErrInsufficientPermissions
	}
	user.Status = status
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *AdminServiceImpl) ListUsers(db *gorm.DB, page, pageSize int) ([]*dto.UserResponse, int64, error) {
	page, pageSize = normalizePagination(page, pageSize)
	users, total, err := s.userRepo.FindAll(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return resp, total, nil
}
