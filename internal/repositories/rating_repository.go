package repositories

import (
	"errors"

	"servora_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingAggregate - сырые суммы по активным отзывам цели.
// Округление до десятых делает сервис, не хранилище.
type RatingAggregate struct {
	ScoreSum      int64
	Count         int64
	AttitudeSum   int64
	AttitudeCount int64
}

type RatingRepository interface {
	// CreateRating полагается на частичный уникальный индекс:
	// нарушение транслируется в ErrDuplicateRating.
	CreateRating(db *gorm.DB, rating *models.Rating) error
	FindRatingByID(db *gorm.DB, id string) (*models.Rating, error)
	// FindRatingByIDForUpdate блокирует строку (SELECT ... FOR UPDATE),
	// чтобы write-once проверки ответа/жалобы видели свежий отзыв.
	FindRatingByIDForUpdate(db *gorm.DB, id string) (*models.Rating, error)
	UpdateRating(db *gorm.DB, rating *models.Rating) error

	HasActiveRatingForOrder(db *gorm.DB, reviewerID, orderID string) (bool, error)
	HasActiveRatingForJob(db *gorm.DB, reviewerID, jobID string) (bool, error)

	AggregateVendor(db *gorm.DB, vendorProfileID string) (*RatingAggregate, error)
	AggregateWaiter(db *gorm.DB, waiterProfileID string) (*RatingAggregate, error)

	FindActiveByVendor(db *gorm.DB, vendorProfileID string, limit, offset int) ([]models.Rating, int64, error)
	FindActiveByWaiter(db *gorm.DB, waiterProfileID string, limit, offset int) ([]models.Rating, int64, error)

	// Admin
	FindReported(db *gorm.DB, limit, offset int) ([]models.Rating, int64, error)
	CountActive(db *gorm.DB) (int64, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) CreateRating(db *gorm.DB, rating *models.Rating) error {
	if err := db.Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRating
		}
		return err
	}
	return nil
}

func (r *RatingRepositoryImpl) FindRatingByID(db *gorm.DB, id string) (*models.Rating, error) {
	var rating models.Rating
	// Отозванные отзывы остаются доступны по id (мягкое удаление)
	err := db.Preload("Reviewer").First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindRatingByIDForUpdate(db *gorm.DB, id string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) UpdateRating(db *gorm.DB, rating *models.Rating) error {
	return db.Save(rating).Error
}

func (r *RatingRepositoryImpl) HasActiveRatingForOrder(db *gorm.DB, reviewerID, orderID string) (bool, error) {
	var count int64
	err := db.Model(&models.Rating{}).
		Where("reviewer_id = ? AND order_id = ? AND is_active = ?", reviewerID, orderID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingRepositoryImpl) HasActiveRatingForJob(db *gorm.DB, reviewerID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Rating{}).
		Where("reviewer_id = ? AND job_id = ? AND is_active = ?", reviewerID, jobID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingRepositoryImpl) AggregateVendor(db *gorm.DB, vendorProfileID string) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := db.Model(&models.Rating{}).
		Where("vendor_profile_id = ? AND is_active = ?", vendorProfileID, true).
		Select("COALESCE(SUM(score), 0) as score_sum, COUNT(*) as count").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *RatingRepositoryImpl) AggregateWaiter(db *gorm.DB, waiterProfileID string) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := db.Model(&models.Rating{}).
		Where("waiter_profile_id = ? AND is_active = ?", waiterProfileID, true).
		Select("COALESCE(SUM(score), 0) as score_sum, COUNT(*) as count, " +
			"COALESCE(SUM(attitude_score), 0) as attitude_sum, COUNT(attitude_score) as attitude_count").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *RatingRepositoryImpl) FindActiveByVendor(db *gorm.DB, vendorProfileID string, limit, offset int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	query := db.Model(&models.Rating{}).
		Where("vendor_profile_id = ? AND is_active = ?", vendorProfileID, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Reviewer").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&ratings).Error
	return ratings, total, err
}

func (r *RatingRepositoryImpl) FindActiveByWaiter(db *gorm.DB, waiterProfileID string, limit, offset int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	query := db.Model(&models.Rating{}).
		Where("waiter_profile_id = ? AND is_active = ?", waiterProfileID, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Reviewer").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&ratings).Error
	return ratings, total, err
}

func (r *RatingRepositoryImpl) FindReported(db *gorm.DB, limit, offset int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	query := db.Model(&models.Rating{}).Where("is_reported = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Reviewer").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&ratings).Error
	return ratings, total, err
}

func (r *RatingRepositoryImpl) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Rating{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
