package dto

import (
	"time"

	"servora_backend/internal/models"
)

type CreateJobRequest struct {
	WaiterProfileID string    `json:"waiter_profile_id" binding:"required,uuid"`
	OrderID         *string   `json:"order_id" binding:"omitempty,uuid"`
	Position        string    `json:"position" binding:"required"`
	EventDate       time.Time `json:"event_date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required,clock"`
	EndTime         string    `json:"end_time" binding:"required,clock"`
	HourlyRate      float64   `json:"hourly_rate" binding:"required,gt=0"`
	Address         string    `json:"address" binding:"required"`
	Notes           string    `json:"notes"`
}

type TransitionJobRequest struct {
	Status        models.JobStatus `json:"status" binding:"required"`
	DeclineReason *string          `json:"decline_reason"`
}

type JobResponse struct {
	ID              string           `json:"id"`
	VendorProfileID string           `json:"vendor_profile_id"`
	WaiterProfileID string           `json:"waiter_profile_id"`
	OrderID         *string          `json:"order_id,omitempty"`
	Position        string           `json:"position"`
	EventDate       time.Time        `json:"event_date"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time"`
	HourlyRate      float64          `json:"hourly_rate"`
	TotalHours      float64          `json:"total_hours"`
	TotalAmount     float64          `json:"total_amount"`
	Address         string           `json:"address"`
	Notes           string           `json:"notes,omitempty"`
	Status          models.JobStatus `json:"status"`
	DeclineReason   *string          `json:"decline_reason,omitempty"`
	RespondedAt     *time.Time       `json:"responded_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	IsRated         bool             `json:"is_rated"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
