package handlers

import (
	"net/http"

	"servora_backend/internal/middleware"
	"servora_backend/internal/services"
	"servora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/ratings")
	{
		public.GET("/:ratingId", h.GetRating)
	}

	ratings := r.Group("/ratings")
	ratings.Use(middleware.AuthMiddleware())
	{
		ratings.POST("", h.SubmitRating)
		ratings.DELETE("/:ratingId", h.RetractRating)
		ratings.POST("/:ratingId/response", h.RespondToRating)
		ratings.POST("/:ratingId/report", h.ReportRating)
	}
}

func (h *RatingHandler) GetRating(c *gin.Context) {
	resp, err := h.ratingService.GetRating(h.GetDB(c), c.Param("ratingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RatingHandler) SubmitRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.SubmitRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.ratingService.SubmitRating(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RatingHandler) RetractRating(c *gin.Context) {
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

func (h *RatingHandler) RespondToRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.RespondToRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.ratingService.RespondToRating(h.GetDB(c), c.Param("ratingId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RatingHandler) ReportRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.ReportRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.ratingService.ReportRating(h.GetDB(c), c.Param("ratingId"), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating reported"})
}
