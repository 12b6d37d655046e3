package dto

type PlatformStatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalCustomers  int64 `json:"total_customers"`
	TotalVendors    int64 `json:"total_vendors"`
	TotalWaiters    int64 `json:"total_waiters"`
	TotalOrders     int64 `json:"total_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	TotalJobs       int64 `json:"total_jobs"`
	CompletedJobs   int64 `json:"completed_jobs"`
	ActiveRatings   int64 `json:"active_ratings"`
}

type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
