package dto

import (
	"time"

	"servora_backend/internal/models"
)

type CreateOrderRequest struct {
	VendorProfileID string    `json:"vendor_profile_id" binding:"required,uuid"`
	EventTypeID     *string   `json:"event_type_id" binding:"omitempty,uuid"`
	EventDate       time.Time `json:"event_date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required,clock"`
	EndTime         string    `json:"end_time" binding:"required,clock"`
	GuestCount      int       `json:"guest_count" binding:"required,gt=0"`
	Address         string    `json:"address" binding:"required"`
	Notes           string    `json:"notes"`
	QuotedPrice     float64   `json:"quoted_price" binding:"required,gt=0"`
}

type TransitionOrderRequest struct {
	Status     models.OrderStatus `json:"status" binding:"required"`
	FinalPrice *float64           `json:"final_price" binding:"omitempty,gt=0"`
}

type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	VendorProfileID string             `json:"vendor_profile_id"`
	EventTypeID     *string            `json:"event_type_id,omitempty"`
	EventDate       time.Time          `json:"event_date"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	GuestCount      int                `json:"guest_count"`
	Address         string             `json:"address"`
	Notes           string             `json:"notes,omitempty"`
	QuotedPrice     float64            `json:"quoted_price"`
	FinalPrice      *float64           `json:"final_price,omitempty"`
	Status          models.OrderStatus `json:"status"`
	IsRated         bool               `json:"is_rated"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type OrderListResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
