package models

import "time"

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	Name              string     `gorm:"not null"`
	Phone             string
	Role              UserRole   `gorm:"type:varchar(20);not null"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'"`
	IsVerified        bool       `gorm:"default:false"`
	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time

	// Relations
	VendorProfile *VendorProfile `gorm:"foreignKey:UserID"`
	WaiterProfile *WaiterProfile `gorm:"foreignKey:UserID"`
}
