package services

import (
	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
)

// In-memory фейки репозиториев. Покрывают только методы, которые
// дергают тестируемые сервисы; остальное падает через встроенный nil.

// passTx запускает транзакционный колбэк напрямую, без базы.
func passTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

type fakeUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeProfileRepo struct {
	repositories.ProfileRepository
	vendors map[string]*models.VendorProfile // по ID профиля
	waiters map[string]*models.WaiterProfile
}

func (f *fakeProfileRepo) FindVendorByID(_ *gorm.DB, id string) (*models.VendorProfile, error) {
	p, ok := f.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) FindVendorByUserID(_ *gorm.DB, userID string) (*models.VendorProfile, error) {
	for _, p := range f.vendors {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) FindWaiterByID(_ *gorm.DB, id string) (*models.WaiterProfile, error) {
	p, ok := f.waiters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) FindWaiterByUserID(_ *gorm.DB, userID string) (*models.WaiterProfile, error) {
	for _, p := range f.waiters {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) IncrementVendorTotalOrders(_ *gorm.DB, profileID string) error {
	f.vendors[profileID].TotalOrders++
	return nil
}

func (f *fakeProfileRepo) IncrementVendorCompletedOrders(_ *gorm.DB, profileID string) error {
	f.vendors[profileID].CompletedOrders++
	return nil
}

func (f *fakeProfileRepo) IncrementWaiterTotalJobs(_ *gorm.DB, profileID string) error {
	f.waiters[profileID].TotalJobs++
	return nil
}

func (f *fakeProfileRepo) IncrementWaiterCompletedJobs(_ *gorm.DB, profileID string) error {
	f.waiters[profileID].CompletedJobs++
	return nil
}

func (f *fakeProfileRepo) WriteVendorAggregates(_ *gorm.DB, profileID string, avg float64, total int64) error {
	p := f.vendors[profileID]
	p.AverageRating = avg
	p.TotalRatings = total
	return nil
}

func (f *fakeProfileRepo) WriteWaiterAggregates(_ *gorm.DB, profileID string, avg, attitude float64, total int64) error {
	p := f.waiters[profileID]
	p.AverageRating = avg
	p.AttitudeRating = attitude
	p.TotalRatings = total
	return nil
}

type fakeOrderRepo struct {
	repositories.OrderRepository
	orders map[string]*models.Order
}

func (f *fakeOrderRepo) CreateOrder(_ *gorm.DB, order *models.Order) error {
	if order.ID == "" {
		order.ID = "order-" + string(rune('a'+len(f.orders)))
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindOrderByID(_ *gorm.DB, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindOrderByIDForUpdate(db *gorm.DB, id string) (*models.Order, error) {
	return f.FindOrderByID(db, id)
}

func (f *fakeOrderRepo) UpdateOrder(_ *gorm.DB, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) MarkRated(_ *gorm.DB, id string) error {
	f.orders[id].IsRated = true
	return nil
}

type fakeJobRepo struct {
	repositories.JobRepository
	jobs map[string]*models.Job
}

func (f *fakeJobRepo) CreateJob(_ *gorm.DB, job *models.Job) error {
	if job.ID == "" {
		job.ID = "job-" + string(rune('a'+len(f.jobs)))
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindJobByID(_ *gorm.DB, id string) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) FindJobByIDForUpdate(db *gorm.DB, id string) (*models.Job, error) {
	return f.FindJobByID(db, id)
}

func (f *fakeJobRepo) UpdateJob(_ *gorm.DB, job *models.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) MarkRated(_ *gorm.DB, id string) error {
	f.jobs[id].IsRated = true
	return nil
}

type fakeRatingRepo struct {
	repositories.RatingRepository
	ratings map[string]*models.Rating
}

func (f *fakeRatingRepo) CreateRating(_ *gorm.DB, rating *models.Rating) error {
	// Повторяет семантику частичного уникального индекса
	for _, r := range f.ratings {
		if !r.IsActive {
			continue
		}
		if rating.OrderID != nil && r.OrderID != nil && *r.OrderID == *rating.OrderID {
			return repositories.ErrDuplicateRating
		}
		if rating.JobID != nil && r.JobID != nil && *r.JobID == *rating.JobID {
			return repositories.ErrDuplicateRating
		}
	}
	if rating.ID == "" {
		rating.ID = "rating-" + string(rune('a'+len(f.ratings)))
	}
	f.ratings[rating.ID] = rating
	return nil
}

func (f *fakeRatingRepo) FindRatingByID(_ *gorm.DB, id string) (*models.Rating, error) {
	r, ok := f.ratings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRatingRepo) FindRatingByIDForUpdate(db *gorm.DB, id string) (*models.Rating, error) {
	return f.FindRatingByID(db, id)
}

func (f *fakeRatingRepo) UpdateRating(_ *gorm.DB, rating *models.Rating) error {
	f.ratings[rating.ID] = rating
	return nil
}

func (f *fakeRatingRepo) HasActiveRatingForOrder(_ *gorm.DB, reviewerID, orderID string) (bool, error) {
	for _, r := range f.ratings {
		if r.IsActive && r.ReviewerID == reviewerID && r.OrderID != nil && *r.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRatingRepo) HasActiveRatingForJob(_ *gorm.DB, reviewerID, jobID string) (bool, error) {
	for _, r := range f.ratings {
		if r.IsActive && r.ReviewerID == reviewerID && r.JobID != nil && *r.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRatingRepo) AggregateVendor(_ *gorm.DB, vendorProfileID string) (*repositories.RatingAggregate, error) {
	agg := &repositories.RatingAggregate{}
	for _, r := range f.ratings {
		if r.IsActive && r.VendorProfileID != nil && *r.VendorProfileID == vendorProfileID {
			agg.ScoreSum += int64(r.Score)
			agg.Count++
		}
	}
	return agg, nil
}

func (f *fakeRatingRepo) AggregateWaiter(_ *gorm.DB, waiterProfileID string) (*repositories.RatingAggregate, error) {
	agg := &repositories.RatingAggregate{}
	for _, r := range f.ratings {
		if r.IsActive && r.WaiterProfileID != nil && *r.WaiterProfileID == waiterProfileID {
			agg.ScoreSum += int64(r.Score)
			agg.Count++
			if r.AttitudeScore != nil {
				agg.AttitudeSum += int64(*r.AttitudeScore)
				agg.AttitudeCount++
			}
		}
	}
	return agg, nil
}

// fakeNotifier глушит доставку: сервисы зовут Notify* в горутинах.
type fakeNotifier struct{}

func (fakeNotifier) NotifyBookingReceived(*gorm.DB, *models.Order)  {}
func (fakeNotifier) NotifyBookingConfirmed(*gorm.DB, *models.Order) {}
func (fakeNotifier) NotifyJobOffer(*gorm.DB, *models.Job)           {}
func (fakeNotifier) NotifyAccountApproved(*gorm.DB, *models.User)   {}
func (fakeNotifier) SendWelcomeEmail(*models.User)                  {}
func (fakeNotifier) SendPasswordResetEmail(*models.User, string)    {}
func (fakeNotifier) GetUserNotifications(*gorm.DB, string, bool) (*dto.NotificationListResponse, error) {
	return &dto.NotificationListResponse{}, nil
}
func (fakeNotifier) MarkAsRead(*gorm.DB, string, string) error { return nil }
