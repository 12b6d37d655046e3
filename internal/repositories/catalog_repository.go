package repositories

import (
	"errors"

	"servora_backend/internal/models"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	FindCategoryByID(db *gorm.DB, id string) (*models.ServiceCategory, error)
	FindExpertiseByID(db *gorm.DB, id string) (*models.Expertise, error)
	FindEventTypeByID(db *gorm.DB, id string) (*models.EventType, error)

	FindCategories(db *gorm.DB) ([]models.ServiceCategory, error)
	FindExpertises(db *gorm.DB) ([]models.Expertise, error)
	FindEventTypes(db *gorm.DB) ([]models.EventType, error)

	CreateCategory(db *gorm.DB, c *models.ServiceCategory) error
	CreateExpertise(db *gorm.DB, e *models.Expertise) error
	CreateEventType(db *gorm.DB, e *models.EventType) error
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

func (r *CatalogRepositoryImpl) FindCategoryByID(db *gorm.DB, id string) (*models.ServiceCategory, error) {
	var c models.ServiceCategory
	if err := db.First(&c, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepositoryImpl) FindExpertiseByID(db *gorm.DB, id string) (*models.Expertise, error) {
	var e models.Expertise
	if err := db.First(&e, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *CatalogRepositoryImpl) FindEventTypeByID(db *gorm.DB, id string) (*models.EventType, error) {
	var e models.EventType
	if err := db.First(&e, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *CatalogRepositoryImpl) FindCategories(db *gorm.DB) ([]models.ServiceCategory, error) {
	var list []models.ServiceCategory
	err := db.Where("is_active = ?", true).Order("name").Find(&list).Error
	return list, err
}

func (r *CatalogRepositoryImpl) FindExpertises(db *gorm.DB) ([]models.Expertise, error) {
	var list []models.Expertise
	err := db.Where("is_active = ?", true).Order("name").Find(&list).Error
	return list, err
}

func (r *CatalogRepositoryImpl) FindEventTypes(db *gorm.DB) ([]models.EventType, error) {
	var list []models.EventType
	err := db.Where("is_active = ?", true).Order("name").Find(&list).Error
	return list, err
}

func (r *CatalogRepositoryImpl) CreateCategory(db *gorm.DB, c *models.ServiceCategory) error {
	return db.Create(c).Error
}

func (r *CatalogRepositoryImpl) CreateExpertise(db *gorm.DB, e *models.Expertise) error {
	return db.Create(e).Error
}

func (r *CatalogRepositoryImpl) CreateEventType(db *gorm.DB, e *models.EventType) error {
	return db.Create(e).Error
}
