package services

import (
	"gorm.io/gorm"

	"servora_backend/internal/email"
	"servora_backend/internal/logger"
	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
)

// NotificationService — единая точка доставки: in-app запись + письмо.
// Все Notify* вызываются после коммита; сбой доставки логируется,
// но никогда не роняет породившую его операцию.
type NotificationService interface {
	NotifyBookingReceived(db *gorm.DB, order *models.Order)
	NotifyBookingConfirmed(db *gorm.DB, order *models.Order)
	NotifyJobOffer(db *gorm.DB, job *models.Job)
	NotifyAccountApproved(db *gorm.DB, user *models.User)

	SendWelcomeEmail(user *models.User)
	SendPasswordResetEmail(user *models.User, token string)

	GetUserNotifications(db *gorm.DB, userID string, unreadOnly bool) (*dto.NotificationListResponse, error)
	MarkAsRead(db *gorm.DB, notificationID, userID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		emailProvider:    emailProvider,
	}
}

func (s *NotificationServiceImpl) NotifyBookingReceived(db *gorm.DB, order *models.Order) {
	vendor, err := s.profileRepo.FindVendorByID(db, order.VendorProfileID)
	if err != nil {
		logger.WithError(err).Error("notify booking-received: vendor profile lookup failed", "order_id", order.ID)
		return
	}
	if err := s.notificationRepo.CreateBookingReceivedNotification(db, vendor.UserID, order); err != nil {
		logger.WithError(err).Error("notify booking-received: in-app record failed", "order_id", order.ID)
	}
	user, err := s.userRepo.FindByID(db, vendor.UserID)
	if err != nil {
		logger.WithError(err).Error("notify booking-received: vendor user lookup failed", "order_id", order.ID)
		return
	}
	s.sendKind(email.KindBookingReceived, user, email.TemplateData{
		"Name":      user.Name,
		"EventDate": order.EventDate.Format("02.01.2006"),
	})
}

func (s *NotificationServiceImpl) NotifyBookingConfirmed(db *gorm.DB, order *models.Order) {
	if err := s.notificationRepo.CreateBookingConfirmedNotification(db, order.UserID, order); err != nil {
		logger.WithError(err).Error("notify booking-confirmed: in-app record failed", "order_id", order.ID)
	}
	user, err := s.userRepo.FindByID(db, order.UserID)
	if err != nil {
		logger.WithError(err).Error("notify booking-confirmed: user lookup failed", "order_id", order.ID)
		return
	}
	vendorName := ""
	if vendor, err := s.profileRepo.FindVendorByID(db, order.VendorProfileID); err == nil {
		vendorName = vendor.BusinessName
	}
	s.sendKind(email.KindBookingConfirmed, user, email.TemplateData{
		"Name":       user.Name,
		"EventDate":  order.EventDate.Format("02.01.2006"),
		"VendorName": vendorName,
	})
}

func (s *NotificationServiceImpl) NotifyJobOffer(db *gorm.DB, job *models.Job) {
	waiter, err := s.profileRepo.FindWaiterByID(db, job.WaiterProfileID)
	if err != nil {
		logger.WithError(err).Error("notify job-offer: waiter profile lookup failed", "job_id", job.ID)
		return
	}
	if err := s.notificationRepo.CreateJobOfferNotification(db, waiter.UserID, job); err != nil {
		logger.WithError(err).Error("notify job-offer: in-app record failed", "job_id", job.ID)
	}
	user, err := s.userRepo.FindByID(db, waiter.UserID)
	if err != nil {
		logger.WithError(err).Error("notify job-offer: waiter user lookup failed", "job_id", job.ID)
		return
	}
	s.sendKind(email.KindJobOffer, user, email.TemplateData{
		"Name":       user.Name,
		"Position":   job.Position,
		"EventDate":  job.EventDate.Format("02.01.2006"),
		"HourlyRate": job.HourlyRate,
	})
}

func (s *NotificationServiceImpl) NotifyAccountApproved(db *gorm.DB, user *models.User) {
	if err := s.notificationRepo.CreateAccountApprovedNotification(db, user.ID); err != nil {
		logger.WithError(err).Error("notify account-approved: in-app record failed", "user_id", user.ID)
	}
	s.sendKind(email.KindAccountApproved, user, email.TemplateData{"Name": user.Name})
}

func (s *NotificationServiceImpl) SendWelcomeEmail(user *models.User) {
	s.sendKind(email.KindWelcome, user, email.TemplateData{"Name": user.Name})
}

func (s *NotificationServiceImpl) SendPasswordResetEmail(user *models.User, token string) {
	s.sendKind(email.KindPasswordReset, user, email.TemplateData{
		"Name":  user.Name,
		"Token": token,
	})
}

func (s *NotificationServiceImpl) sendKind(kind string, user *models.User, data email.TemplateData) {
	if err := s.emailProvider.SendKind(kind, user.Email, data); err != nil {
		logger.WithError(err).Warn("email delivery failed", "kind", kind, "user_id", user.ID)
	}
}

func (s *NotificationServiceImpl) GetUserNotifications(db *gorm.DB, userID string, unreadOnly bool) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindUserNotifications(db, userID, unreadOnly)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.GetUnreadCount(db, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.NotificationListResponse{
		Notifications: make([]*dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, &dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return resp, nil
}

func (s *NotificationServiceImpl) MarkAsRead(db *gorm.DB, notificationID, userID string) error {
	return s.notificationRepo.MarkAsRead(db, notificationID, userID)
}
