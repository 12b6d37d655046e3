package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// VendorProfile - профиль сервисного бизнеса (кейтеринг, банкетный сервис и т.д.)
type VendorProfile struct {
	BaseModel
	UserID       string `gorm:"uniqueIndex;not null"`
	BusinessName string
	CategoryID   *string `gorm:"index"`
	City         string
	Description  string
	IsApproved   bool `gorm:"default:false"`
	IsAvailable  bool `gorm:"default:true"`

	// Агрегаты, поддерживаются Booking/Rating движками
	AverageRating   float64 `gorm:"default:0"`
	TotalRatings    int64   `gorm:"default:0"`
	TotalOrders     int64   `gorm:"default:0"`
	CompletedOrders int64   `gorm:"default:0"`

	// Relations
	Category *ServiceCategory `gorm:"foreignKey:CategoryID"`
}

// WaiterProfile - профиль официанта (gig-работника)
type WaiterProfile struct {
	BaseModel
	UserID       string `gorm:"uniqueIndex;not null"`
	FullName     string
	ExpertiseIDs datatypes.JSON `gorm:"type:jsonb"` // ids из справочника Expertise
	HourlyRate   float64
	City         string
	Bio          string
	IsApproved   bool `gorm:"default:false"`
	IsAvailable  bool `gorm:"default:true"`

	// Агрегаты, поддерживаются Booking/Rating движками
	AverageRating  float64 `gorm:"default:0"`
	AttitudeRating float64 `gorm:"default:0"`
	TotalRatings   int64   `gorm:"default:0"`
	TotalJobs      int64   `gorm:"default:0"`
	CompletedJobs  int64   `gorm:"default:0"`
}

// GetExpertiseIDs возвращает ids экспертиз как slice строк
func (w *WaiterProfile) GetExpertiseIDs() []string {
	var ids []string
	if len(w.ExpertiseIDs) > 0 {
		_ = json.Unmarshal(w.ExpertiseIDs, &ids)
	}
	return ids
}

// SetExpertiseIDs устанавливает ids экспертиз
func (w *WaiterProfile) SetExpertiseIDs(ids []string) {
	data, _ := json.Marshal(ids)
	w.ExpertiseIDs = datatypes.JSON(data)
}
