package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "booking-received", "job-offer", ...
	Title   string `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"order_id": "...", "job_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
