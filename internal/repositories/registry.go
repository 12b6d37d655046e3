package repositories

// RepositoryContainer собирает все репозитории приложения.
// Репозитории без состояния: соединение приходит параметром в каждый метод.
type RepositoryContainer struct {
	User         UserRepository
	Profile      ProfileRepository
	Catalog      CatalogRepository
	Order        OrderRepository
	Job          JobRepository
	Rating       RatingRepository
	Notification NotificationRepository
}

func NewRepositoryContainer() *RepositoryContainer {
	return &RepositoryContainer{
		User:         NewUserRepository(),
		Profile:      NewProfileRepository(),
		Catalog:      NewCatalogRepository(),
		Order:        NewOrderRepository(),
		Job:          NewJobRepository(),
		Rating:       NewRatingRepository(),
		Notification: NewNotificationRepository(),
	}
}
