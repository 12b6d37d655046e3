package handlers

import (
	"net/http"

	"servora_backend/internal/middleware"
	"servora_backend/internal/models"
	"servora_backend/internal/services"
	"servora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService   services.AdminService
	orderService   services.OrderService
	ratingService  services.RatingService
	catalogService services.CatalogService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService services.AdminService,
	orderService services.OrderService,
	ratingService services.RatingService,
	catalogService services.CatalogService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		adminService:   adminService,
		orderService:   orderService,
		ratingService:  ratingService,
		catalogService: catalogService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/stats", h.GetPlatformStats)
		admin.GET("/users", h.ListUsers)
		admin.POST("/users/:userId/status", h.SetUserStatus)

		admin.GET("/vendors/pending", h.ListPendingVendors)
		admin.POST("/vendors/:profileId/approve", h.ApproveVendor)
		admin.GET("/waiters/pending", h.ListPendingWaiters)
		admin.POST("/waiters/:profileId/approve", h.ApproveWaiter)

		admin.POST("/orders/:orderId/refund", h.RefundOrder)

		admin.GET("/ratings/reported", h.GetReportedRatings)
		admin.DELETE("/ratings/:ratingId", h.RetractRating)
		admin.POST("/ratings/recompute/:targetType/:profileId", h.RecomputeAggregate)

		admin.POST("/catalog/categories", h.CreateCategory)
		admin.POST("/catalog/expertises", h.CreateExpertise)
		admin.POST("/catalog/event-types", h.CreateEventType)
	}
}

func (h *AdminHandler) GetPlatformStats(c *gin.Context) {
	resp, err := h.adminService.GetPlatformStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	users, total, err := h.adminService.ListUsers(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total, "page": page, "page_size": pageSize})
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var req dto.SetUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.adminService.SetUserStatus(h.GetDB(c), c.Param("userId"), models.UserStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListPendingVendors(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.adminService.ListPendingVendors(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	resp, err := h.adminService.ApproveVendor(h.GetDB(c), c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListPendingWaiters(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.adminService.ListPendingWaiters(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ApproveWaiter(c *gin.Context) {
	resp, err := h.adminService.ApproveWaiter(h.GetDB(c), c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) RefundOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	resp, err := h.orderService.RefundOrder(h.GetDB(c), c.Param("orderId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetReportedRatings(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.ratingService.GetReportedRatings(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) RetractRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.ratingService.RetractRating(h.GetDB(c), c.Param("ratingId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating retracted"})
}

func (h *AdminHandler) RecomputeAggregate(c *gin.Context) {
	targetType := models.RatingTargetType(c.Param("targetType"))
	if err := h.ratingService.RecomputeAggregate(h.GetDB(c), targetType, c.Param("profileId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aggregates recomputed"})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) CreateExpertise(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateExpertise(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) CreateEventType(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateEventType(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
