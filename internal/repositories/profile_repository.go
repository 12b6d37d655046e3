package repositories

import (
	"errors"

	"servora_backend/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	// Vendor profiles
	CreateVendorProfile(db *gorm.DB, profile *models.VendorProfile) error
	FindVendorByID(db *gorm.DB, id string) (*models.VendorProfile, error)
	FindVendorByUserID(db *gorm.DB, userID string) (*models.VendorProfile, error)
	UpdateVendorProfile(db *gorm.DB, profile *models.VendorProfile) error
	FindVendors(db *gorm.DB, approvedOnly bool, limit, offset int) ([]models.VendorProfile, int64, error)

	// Waiter profiles
	CreateWaiterProfile(db *gorm.DB, profile *models.WaiterProfile) error
	FindWaiterByID(db *gorm.DB, id string) (*models.WaiterProfile, error)
	FindWaiterByUserID(db *gorm.DB, userID string) (*models.WaiterProfile, error)
	UpdateWaiterProfile(db *gorm.DB, profile *models.WaiterProfile) error
	FindWaiters(db *gorm.DB, approvedOnly bool, limit, offset int) ([]models.WaiterProfile, int64, error)

	// Счетчики сделок. Атомарные UPDATE ... SET x = x + 1, вызываются
	// только внутри транзакции соответствующего перехода.
	IncrementVendorTotalOrders(db *gorm.DB, profileID string) error
	IncrementVendorCompletedOrders(db *gorm.DB, profileID string) error
	IncrementWaiterTotalJobs(db *gorm.DB, profileID string) error
	IncrementWaiterCompletedJobs(db *gorm.DB, profileID string) error

	// Запись агрегатов рейтинга
	WriteVendorAggregates(db *gorm.DB, profileID string, avg float64, total int64) error
	WriteWaiterAggregates(db *gorm.DB, profileID string, avg, attitude float64, total int64) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// ---------------- Vendor ----------------

func (r *ProfileRepositoryImpl) CreateVendorProfile(db *gorm.DB, profile *models.VendorProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindVendorByID(db *gorm.DB, id string) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := db.Preload("Category").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindVendorByUserID(db *gorm.DB, userID string) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := db.Preload("Category").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateVendorProfile(db *gorm.DB, profile *models.VendorProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindVendors(db *gorm.DB, approvedOnly bool, limit, offset int) ([]models.VendorProfile, int64, error) {
	var profiles []models.VendorProfile
	var total int64

	query := db.Model(&models.VendorProfile{})
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

// ---------------- Waiter ----------------

func (r *ProfileRepositoryImpl) CreateWaiterProfile(db *gorm.DB, profile *models.WaiterProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindWaiterByID(db *gorm.DB, id string) (*models.WaiterProfile, error) {
	var profile models.WaiterProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindWaiterByUserID(db *gorm.DB, userID string) (*models.WaiterProfile, error) {
	var profile models.WaiterProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateWaiterProfile(db *gorm.DB, profile *models.WaiterProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindWaiters(db *gorm.DB, approvedOnly bool, limit, offset int) ([]models.WaiterProfile, int64, error) {
	var profiles []models.WaiterProfile
	var total int64

	query := db.Model(&models.WaiterProfile{})
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

// ---------------- Counters ----------------

func (r *ProfileRepositoryImpl) IncrementVendorTotalOrders(db *gorm.DB, profileID string) error {
	return db.Model(&models.VendorProfile{}).Where("id = ?", profileID).
		UpdateColumn("total_orders", gorm.Expr("total_orders + 1")).Error
}

func (r *ProfileRepositoryImpl) IncrementVendorCompletedOrders(db *gorm.DB, profileID string) error {
	return db.Model(&models.VendorProfile{}).Where("id = ?", profileID).
		UpdateColumn("completed_orders", gorm.Expr("completed_orders + 1")).Error
}

func (r *ProfileRepositoryImpl) IncrementWaiterTotalJobs(db *gorm.DB, profileID string) error {
	return db.Model(&models.WaiterProfile{}).Where("id = ?", profileID).
		UpdateColumn("total_jobs", gorm.Expr("total_jobs + 1")).Error
}

func (r *ProfileRepositoryImpl) IncrementWaiterCompletedJobs(db *gorm.DB, profileID string) error {
	return db.Model(&models.WaiterProfile{}).Where("id = ?", profileID).
		UpdateColumn("completed_jobs", gorm.Expr("completed_jobs + 1")).Error
}

// ---------------- Aggregates ----------------

func (r *ProfileRepositoryImpl) WriteVendorAggregates(db *gorm.DB, profileID string, avg float64, total int64) error {
	return db.Model(&models.VendorProfile{}).Where("id = ?", profileID).
		UpdateColumns(map[string]interface{}{
			"average_rating": avg,
			"total_ratings":  total,
		}).Error
}

func (r *ProfileRepositoryImpl) WriteWaiterAggregates(db *gorm.DB, profileID string, avg, attitude float64, total int64) error {
	return db.Model(&models.WaiterProfile{}).Where("id = ?", profileID).
		UpdateColumns(map[string]interface{}{
			"average_rating":  avg,
			"attitude_rating": attitude,
			"total_ratings":   total,
		}).Error
}
