package repositories

import (
	"errors"

	"servora_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository interface {
	CreateJob(db *gorm.DB, job *models.Job) error
	FindJobByID(db *gorm.DB, id string) (*models.Job, error)
	// FindJobByIDForUpdate блокирует строку на время проверки перехода.
	FindJobByIDForUpdate(db *gorm.DB, id string) (*models.Job, error)
	UpdateJob(db *gorm.DB, job *models.Job) error
	MarkRated(db *gorm.DB, id string) error
	FindJobsByWaiter(db *gorm.DB, waiterProfileID string, limit, offset int) ([]models.Job, int64, error)
	FindJobsByVendor(db *gorm.DB, vendorProfileID string, limit, offset int) ([]models.Job, int64, error)
	CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error)
	CountAll(db *gorm.DB) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) CreateJob(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindJobByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Vendor").Preload("Waiter").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindJobByIDForUpdate(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) UpdateJob(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *JobRepositoryImpl) MarkRated(db *gorm.DB, id string) error {
	return db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("is_rated", true).Error
}

func (r *JobRepositoryImpl) FindJobsByWaiter(db *gorm.DB, waiterProfileID string, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := db.Model(&models.Job{}).Where("waiter_profile_id = ?", waiterProfileID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Vendor").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) FindJobsByVendor(db *gorm.DB, vendorProfileID string, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := db.Model(&models.Job{}).Where("vendor_profile_id = ?", vendorProfileID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Waiter").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
