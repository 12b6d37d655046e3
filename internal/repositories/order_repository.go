package repositories

import (
	"errors"

	"servora_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	CreateOrder(db *gorm.DB, order *models.Order) error
	FindOrderByID(db *gorm.DB, id string) (*models.Order, error)
	// FindOrderByIDForUpdate блокирует строку (SELECT ... FOR UPDATE),
	// чтобы проверка таблицы переходов видела свежий статус.
	FindOrderByIDForUpdate(db *gorm.DB, id string) (*models.Order, error)
	UpdateOrder(db *gorm.DB, order *models.Order) error
	MarkRated(db *gorm.DB, id string) error
	FindOrdersByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Order, int64, error)
	FindOrdersByVendor(db *gorm.DB, vendorProfileID string, limit, offset int) ([]models.Order, int64, error)
	CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error)
	CountAll(db *gorm.DB) (int64, error)
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) CreateOrder(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindOrderByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Vendor").Preload("EventType").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindOrderByIDForUpdate(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) UpdateOrder(db *gorm.DB, order *models.Order) error {
	return db.Save(order).Error
}

func (r *OrderRepositoryImpl) MarkRated(db *gorm.DB, id string) error {
	return db.Model(&models.Order{}).Where("id = ?", id).
		UpdateColumn("is_rated", true).Error
}

func (r *OrderRepositoryImpl) FindOrdersByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := db.Model(&models.Order{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Vendor").Preload("EventType").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepositoryImpl) FindOrdersByVendor(db *gorm.DB, vendorProfileID string, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := db.Model(&models.Order{}).Where("vendor_profile_id = ?", vendorProfileID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("User").Preload("EventType").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepositoryImpl) CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *OrderRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).Count(&count).Error
	return count, err
}
