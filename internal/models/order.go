package models

import (
	"time"
)

// Order - бронирование: пользователь нанимает исполнителя на мероприятие.
// После перехода в терминальный статус мутирует только флаг IsRated.
type Order struct {
	BaseModel
	UserID          string  `gorm:"not null;index"`
	VendorProfileID string  `gorm:"not null;index"`
	EventTypeID     *string `gorm:"index"`

	EventDate  time.Time
	StartTime  string // "HH:MM", same-day wall clock
	EndTime    string
	GuestCount int
	Address    string
	Notes      string

	QuotedPrice float64
	FinalPrice  *float64

	Status  OrderStatus `gorm:"type:varchar(20);default:'pending';index"`
	IsRated bool        `gorm:"default:false"`

	// Relations
	User      User          `gorm:"foreignKey:UserID"`
	Vendor    VendorProfile `gorm:"foreignKey:VendorProfileID"`
	EventType *EventType    `gorm:"foreignKey:EventTypeID"`
}

// Job - оффер: исполнитель нанимает официанта, опционально под конкретный заказ.
type Job struct {
	BaseModel
	VendorProfileID string  `gorm:"not null;index"`
	WaiterProfileID string  `gorm:"not null;index"`
	OrderID         *string `gorm:"index"`

	Position  string
	EventDate time.Time
	StartTime string // "HH:MM"
	EndTime   string
	Address   string
	Notes     string

	HourlyRate  float64
	TotalHours  float64 // вычисляется при создании из StartTime/EndTime
	TotalAmount float64 // TotalHours * HourlyRate

	Status        JobStatus `gorm:"type:varchar(20);default:'pending';index"`
	RespondedAt   *time.Time
	DeclineReason *string
	CompletedAt   *time.Time
	IsRated       bool `gorm:"default:false"`

	// Relations
	Vendor VendorProfile `gorm:"foreignKey:VendorProfileID"`
	Waiter WaiterProfile `gorm:"foreignKey:WaiterProfileID"`
	Order  *Order        `gorm:"foreignKey:OrderID"`
}
