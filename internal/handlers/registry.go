package handlers

import (
	"servora_backend/internal/services"
	"servora_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ProfileHandler      *ProfileHandler
	CatalogHandler      *CatalogHandler
	OrderHandler        *OrderHandler
	JobHandler          *JobHandler
	RatingHandler       *RatingHandler
	NotificationHandler *NotificationHandler
	AdminHandler        *AdminHandler
}

// NewAppHandlers связывает сервисы в хэндлеры поверх общего BaseHandler.
func NewAppHandlers(s *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, s.Auth),
		UserHandler:         NewUserHandler(base, s.User, s.Auth),
		ProfileHandler:      NewProfileHandler(base, s.Profile, s.Rating),
		CatalogHandler:      NewCatalogHandler(base, s.Catalog),
		OrderHandler:        NewOrderHandler(base, s.Order),
		JobHandler:          NewJobHandler(base, s.Job),
		RatingHandler:       NewRatingHandler(base, s.Rating),
		NotificationHandler: NewNotificationHandler(base, s.Notification),
		AdminHandler:        NewAdminHandler(base, s.Admin, s.Order, s.Rating, s.Catalog),
	}
}
