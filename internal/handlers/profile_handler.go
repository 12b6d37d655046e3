package handlers

import (
	"net/http"

	"servora_backend/internal/middleware"
	"servora_backend/internal/models"
	"servora_backend/internal/services"
	"servora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	ratingService  services.RatingService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, ratingService services.RatingService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		ratingService:  ratingService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичные витрины
	vendors := r.Group("/vendors")
	{
		vendors.GET("", h.ListVendors)
		vendors.GET("/:profileId", h.GetVendor)
		vendors.GET("/:profileId/ratings", h.GetVendorRatings)
	}
	waiters := r.Group("/waiters")
	{
		waiters.GET("", h.ListWaiters)
		waiters.GET("/:profileId", h.GetWaiter)
		waiters.GET("/:profileId/ratings", h.GetWaiterRatings)
	}

	// Собственный профиль
	my := r.Group("/profiles/my")
	my.Use(middleware.AuthMiddleware())
	{
		my.GET("/vendor", middleware.RoleMiddleware(models.UserRoleVendor), h.GetMyVendorProfile)
		my.PATCH("/vendor", middleware.RoleMiddleware(models.UserRoleVendor), h.UpdateMyVendorProfile)
		my.GET("/waiter", middleware.RoleMiddleware(models.UserRoleWaiter), h.GetMyWaiterProfile)
		my.PATCH("/waiter", middleware.RoleMiddleware(models.UserRoleWaiter), h.UpdateMyWaiterProfile)
	}
}

func (h *ProfileHandler) ListVendors(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.profileService.ListVendors(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetVendor(c *gin.Context) {
	resp, err := h.profileService.GetVendorProfile(h.GetDB(c), c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetVendorRatings(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.ratingService.GetVendorRatings(h.GetDB(c), c.Param("profileId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) ListWaiters(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.profileService.ListWaiters(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetWaiter(c *gin.Context) {
	resp, err := h.profileService.GetWaiterProfile(h.GetDB(c), c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetWaiterRatings(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.ratingService.GetWaiterRatings(h.GetDB(c), c.Param("profileId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetMyVendorProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	resp, err := h.profileService.GetMyVendorProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateMyVendorProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateVendorProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.profileService.UpdateMyVendorProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetMyWaiterProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	resp, err := h.profileService.GetMyWaiterProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateMyWaiterProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateWaiterProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.profileService.UpdateMyWaiterProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
