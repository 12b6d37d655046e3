package dto

type UpdateVendorProfileRequest struct {
	BusinessName *string `json:"business_name"`
	CategoryID   *string `json:"category_id"`
	City         *string `json:"city"`
	Description  *string `json:"description"`
	IsAvailable  *bool   `json:"is_available"`
}

type UpdateWaiterProfileRequest struct {
	FullName     *string  `json:"full_name"`
	City         *string  `json:"city"`
	Bio          *string  `json:"bio"`
	HourlyRate   *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
	ExpertiseIDs []string `json:"expertise_ids"`
	IsAvailable  *bool    `json:"is_available"`
}

type VendorProfileResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	BusinessName string  `json:"business_name"`
	CategoryID   *string `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	City         string  `json:"city"`
	Description  string  `json:"description,omitempty"`
	IsApproved   bool    `json:"is_approved"`
	IsAvailable  bool    `json:"is_available"`

	AverageRating   float64 `json:"average_rating"`
	TotalRatings    int64   `json:"total_ratings"`
	TotalOrders     int64   `json:"total_orders"`
	CompletedOrders int64   `json:"completed_orders"`
}

type WaiterProfileResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	FullName     string   `json:"full_name"`
	ExpertiseIDs []string `json:"expertise_ids,omitempty"`
	HourlyRate   float64  `json:"hourly_rate"`
	City         string   `json:"city"`
	Bio          string   `json:"bio,omitempty"`
	IsApproved   bool     `json:"is_approved"`
	IsAvailable  bool     `json:"is_available"`

	AverageRating  float64 `json:"average_rating"`
	AttitudeRating float64 `json:"attitude_rating"`
	TotalRatings   int64   `json:"total_ratings"`
	TotalJobs      int64   `json:"total_jobs"`
	CompletedJobs  int64   `json:"completed_jobs"`
}

type VendorListResponse struct {
	Vendors    []*VendorProfileResponse `json:"vendors"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}

type WaiterListResponse struct {
	Waiters    []*WaiterProfileResponse `json:"waiters"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}
