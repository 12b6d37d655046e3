package dto

import (
	"time"

	"servora_backend/internal/models"
)

type SubmitRatingRequest struct {
	TargetType models.RatingTargetType `json:"target_type" binding:"required"`

	// Ссылка на завершённую сделку: заказ для вендора, смена для официанта.
	OrderID *string `json:"order_id" binding:"omitempty,uuid"`
	JobID   *string `json:"job_id" binding:"omitempty,uuid"`

	// Необязательная явная цель. Если указана и не совпадает со стороной
	// сделки — отказ, никогда не подменяем.
	TargetProfileID *string `json:"target_profile_id" binding:"omitempty,uuid"`

	Score         int    `json:"score" binding:"required,min=1,max=5"`
	AttitudeScore *int   `json:"attitude_score" binding:"omitempty,min=1,max=5"`
	ReviewText    string `json:"review_text" binding:"max=500"`

	Punctuality     *int `json:"punctuality" binding:"omitempty,min=1,max=5"`
	Professionalism *int `json:"professionalism" binding:"omitempty,min=1,max=5"`
	Quality         *int `json:"quality" binding:"omitempty,min=1,max=5"`
}

type RespondToRatingRequest struct {
	Response string `json:"response" binding:"required,max=2000"`
}

type ReportRatingRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type RatingResponse struct {
	ID              string                  `json:"id"`
	ReviewerID      string                  `json:"reviewer_id"`
	TargetType      models.RatingTargetType `json:"target_type"`
	VendorProfileID *string                 `json:"vendor_profile_id,omitempty"`
	WaiterProfileID *string                 `json:"waiter_profile_id,omitempty"`
	OrderID         *string                 `json:"order_id,omitempty"`
	JobID           *string                 `json:"job_id,omitempty"`
	Score           int                     `json:"score"`
	AttitudeScore   *int                    `json:"attitude_score,omitempty"`
	ReviewText      string                  `json:"review_text,omitempty"`
	Punctuality     *int                    `json:"punctuality,omitempty"`
	Professionalism *int                    `json:"professionalism,omitempty"`
	Quality         *int                    `json:"quality,omitempty"`
	IsActive        bool                    `json:"is_active"`
	IsReported      bool                    `json:"is_reported"`
	Response        *string                 `json:"response,omitempty"`
	RespondedAt     *time.Time              `json:"responded_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

type RatingListResponse struct {
	Ratings    []*RatingResponse `json:"ratings"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
