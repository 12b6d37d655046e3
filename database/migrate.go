package database

import (
	"fmt"

	"gorm.io/gorm"

	"servora_backend/internal/logger"
	"servora_backend/internal/models"
)

// Migrate прогоняет AutoMigrate по всем моделям и сеет справочники.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	// uuid_generate_v4() для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.Expertise{},
		&models.EventType{},
		&models.VendorProfile{},
		&models.WaiterProfile{},
		&models.Order{},
		&models.Job{},
		&models.Rating{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	if err := seedCatalogs(db); err != nil {
		return fmt.Errorf("catalog seeding failed: %w", err)
	}

	logger.Info("Database migrations complete")
	return nil
}

// seedCatalogs заводит базовые справочники, если их еще нет.
func seedCatalogs(db *gorm.DB) error {
	categories := []models.ServiceCategory{
		{Name: "Catering", Slug: "catering"},
		{Name: "Photography", Slug: "photography"},
		{Name: "Decoration", Slug: "decoration"},
		{Name: "Music & Entertainment", Slug: "music-entertainment"},
	}
	for i := range categories {
		var existing models.ServiceCategory
		err := db.Where("slug = ?", categories[i].Slug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			categories[i].IsActive = true
			if err := db.Create(&categories[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	expertises := []models.Expertise{
		{Name: "Banquet service", Slug: "banquet"},
		{Name: "Bar service", Slug: "bar"},
		{Name: "Fine dining", Slug: "fine-dining"},
		{Name: "Coffee service", Slug: "coffee"},
	}
	for i := range expertises {
		var existing models.Expertise
		err := db.Where("slug = ?", expertises[i].Slug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			expertises[i].IsActive = true
			if err := db.Create(&expertises[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	eventTypes := []models.EventType{
		{Name: "Wedding", Slug: "wedding"},
		{Name: "Corporate event", Slug: "corporate"},
		{Name: "Birthday", Slug: "birthday"},
		{Name: "Conference", Slug: "conference"},
	}
	for i := range eventTypes {
		var existing models.EventType
		err := db.Where("slug = ?", eventTypes[i].Slug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			eventTypes[i].IsActive = true
			if err := db.Create(&eventTypes[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
