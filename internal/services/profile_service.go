package services

import (
	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
)

type ProfileService interface {
	GetVendorProfile(db *gorm.DB, profileID string) (*dto.VendorProfileResponse, error)
	GetWaiterProfile(db *gorm.DB, profileID string) (*dto.WaiterProfileResponse, error)
	GetMyVendorProfile(db *gorm.DB, userID string) (*dto.VendorProfileResponse, error)
	GetMyWaiterProfile(db *gorm.DB, userID string) (*dto.WaiterProfileResponse, error)
	UpdateMyVendorProfile(db *gorm.DB, userID string, req *dto.UpdateVendorProfileRequest) (*dto.VendorProfileResponse, error)
	UpdateMyWaiterProfile(db *gorm.DB, userID string, req *dto.UpdateWaiterProfileRequest) (*dto.WaiterProfileResponse, error)
	// Публичные витрины: только одобренные профили
	ListVendors(db *gorm.DB, page, pageSize int) (*dto.VendorListResponse, error)
	ListWaiters(db *gorm.DB, page, pageSize int) (*dto.WaiterListResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, catalogRepo repositories.CatalogRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, catalogRepo: catalogRepo}
}

func (s *ProfileServiceImpl) GetVendorProfile(db *gorm.DB, profileID string) (*dto.VendorProfileResponse, error) {
	profile, err := s.profileRepo.FindVendorByID(db, profileID)
	if err != nil {
		return nil, err
	}
	return toVendorProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetWaiterProfile(db *gorm.DB, profileID string) (*dto.WaiterProfileResponse, error) {
	profile, err := s.profileRepo.FindWaiterByID(db, profileID)
	if err != nil {
		return nil, err
	}
	return toWaiterProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetMyVendorProfile(db *gorm.DB, userID string) (*dto.VendorProfileResponse, error) {
	profile, err := s.profileRepo.FindVendorByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	return toVendorProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetMyWaiterProfile(db *gorm.DB, userID string) (*dto.WaiterProfileResponse, error) {
	profile, err := s.profileRepo.FindWaiterByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	return toWaiterProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateMyVendorProfile(db *gorm.DB, userID string, req *dto.UpdateVendorProfileRequest) (*dto.VendorProfileResponse, error) {
	profile, err := s.profileRepo.FindVendorByUserID(db, userID)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		profile.BusinessName = *req.BusinessName
	}
	if req.CategoryID != nil {
		if _, err := s.catalogRepo.FindCategoryByID(db, *req.CategoryID); err != nil {
			return nil, err
		}
		profile.CategoryID = req.CategoryID
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if err := s.profileRepo.UpdateVendorProfile(db, profile); err != nil {
		return nil, err
	}
	return toVendorProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateMyWaiterProfile(db *gorm.DB, userID string, req *dto.UpdateWaiterProfileRequest) (*dto.WaiterProfileResponse, error) {
	profile, err := s.profileRepo.FindWaiterByUserID(db, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.ExpertiseIDs != nil {
		// каждая специализация должна существовать в справочнике
		for _, id := range req.ExpertiseIDs {
			if _, err := s.catalogRepo.FindExpertiseByID(db, id); err != nil {
				return nil, err
			}
		}
		profile.SetExpertiseIDs(req.ExpertiseIDs)
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if err := s.profileRepo.UpdateWaiterProfile(db, profile); err != nil {
		return nil, err
	}
	return toWaiterProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) ListVendors(db *gorm.DB, page, pageSize int) (*dto.VendorListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	profiles, total, err := s.profileRepo.FindVendors(db, true, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	resp := &dto.VendorListResponse{
		Vendors:    make([]*dto.VendorProfileResponse, 0, len(profiles)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range profiles {
		resp.Vendors = append(resp.Vendors, toVendorProfileResponse(&profiles[i]))
	}
	return resp, nil
}

func (s *ProfileServiceImpl) ListWaiters(db *gorm.DB, page, pageSize int) (*dto.WaiterListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	profiles, total, err := s.profileRepo.FindWaiters(db, true, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	resp := &dto.WaiterListResponse{
		Waiters:    make([]*dto.WaiterProfileResponse, 0, len(profiles)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range profiles {
		resp.Waiters = append(resp.Waiters, toWaiterProfileResponse(&profiles[i]))
	}
	return resp, nil
}

func toVendorProfileResponse(p *models.VendorProfile) *dto.VendorProfileResponse {
	resp := &dto.VendorProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		BusinessName:    p.BusinessName,
		CategoryID:      p.CategoryID,
		City:            p.City,
		Description:     p.Description,
		IsApproved:      p.IsApproved,
		IsAvailable:     p.IsAvailable,
		AverageRating:   p.AverageRating,
		TotalRatings:    p.TotalRatings,
		TotalOrders:     p.TotalOrders,
		CompletedOrders: p.CompletedOrders,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}

func toWaiterProfileResponse(p *models.WaiterProfile) *dto.WaiterProfileResponse {
	ids := p.GetExpertiseIDs()
	return &dto.WaiterProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		FullName:       p.FullName,
		ExpertiseIDs:   ids,
		HourlyRate:     p.HourlyRate,
		City:           p.City,
		Bio:            p.Bio,
		IsApproved:     p.IsApproved,
		IsAvailable:    p.IsAvailable,
		AverageRating:  p.AverageRating,
		AttitudeRating: p.AttitudeRating,
		TotalRatings:   p.TotalRatings,
		TotalJobs:      p.TotalJobs,
		CompletedJobs:  p.CompletedJobs,
	}
}
