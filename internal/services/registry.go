package services

import (
	"servora_backend/internal/email"
	"servora_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Profile      ProfileService
	Catalog      CatalogService
	Order        OrderService
	Job          JobService
	Rating       RatingService
	Notification NotificationService
	Admin        AdminService
}

// NewServiceContainer связывает репозитории и провайдеров в сервисы
func NewServiceContainer(repos *repositories.RepositoryContainer, emailProvider email.Provider) *ServiceContainer {
	notification := NewNotificationService(repos.Notification, repos.User, repos.Profile, emailProvider)

	return &ServiceContainer{
		Auth:         NewAuthService(repos.User, repos.Profile, notification),
		User:         NewUserService(repos.User),
		Profile:      NewProfileService(repos.Profile, repos.Catalog),
		Catalog:      NewCatalogService(repos.Catalog),
		Order:        NewOrderService(repos.Order, repos.Profile, repos.User, repos.Catalog, notification),
		Job:          NewJobService(repos.Job, repos.Order, repos.Profile, repos.User, notification),
		Rating:       NewRatingService(repos.Rating, repos.Order, repos.Job, repos.Profile, repos.User),
		Notification: notification,
		Admin:        NewAdminService(repos.User, repos.Profile, repos.Order, repos.Job, repos.Rating, notification),
	}
}
