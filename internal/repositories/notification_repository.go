package repositories

import (
	"encoding/json"
	"errors"

	"servora_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Типы in-app уведомлений. Дублируют виды писем.
const (
	NotificationTypeBookingReceived  = "booking-received"
	NotificationTypeBookingConfirmed = "booking-confirmed"
	NotificationTypeJobOffer         = "job-offer"
	NotificationTypeAccountApproved  = "account-approved"
)

type NotificationRepository interface {
	CreateNotification(db *gorm.DB, notification *models.Notification) error
	FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error)
	// MarkAsRead помечает уведомление прочитанным только у его владельца.
	MarkAsRead(db *gorm.DB, notificationID, userID string) error
	GetUnreadCount(db *gorm.DB, userID string) (int64, error)

	// Фабрики для типовых уведомлений
	CreateBookingReceivedNotification(db *gorm.DB, vendorUserID string, order *models.Order) error
	CreateBookingConfirmedNotification(db *gorm.DB, customerUserID string, order *models.Order) error
	CreateJobOfferNotification(db *gorm.DB, waiterUserID string, job *models.Job) error
	CreateAccountApprovedNotification(db *gorm.DB, userID string) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) CreateNotification(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error) {
	var list []models.Notification
	query := db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	err := query.Order("created_at DESC").Limit(100).Find(&list).Error
	return list, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, notificationID, userID string) error {
	result := db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		UpdateColumns(map[string]interface{}{
			"is_read": true,
			"read_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// ---------------- Factories ----------------

func (r *NotificationRepositoryImpl) CreateBookingReceivedNotification(db *gorm.DB, vendorUserID string, order *models.Order) error {
	data, _ := json.Marshal(map[string]string{"order_id": order.ID})
	return r.CreateNotification(db, &models.Notification{
		UserID:  vendorUserID,
		Type:    NotificationTypeBookingReceived,
		Title:   "New booking request",
		Message: "You have received a new booking request.",
		Data:    datatypes.JSON(data),
	})
}

func (r *NotificationRepositoryImpl) CreateBookingConfirmedNotification(db *gorm.DB, customerUserID string, order *models.Order) error {
	data, _ := json.Marshal(map[string]string{"order_id": order.ID})
	return r.CreateNotification(db, &models.Notification{
		UserID:  customerUserID,
		Type:    NotificationTypeBookingConfirmed,
		Title:   "Booking confirmed",
		Message: "Your booking has been confirmed by the vendor.",
		Data:    datatypes.JSON(data),
	})
}

func (r *NotificationRepositoryImpl) CreateJobOfferNotification(db *gorm.DB, waiterUserID string, job *models.Job) error {
	data, _ := json.Marshal(map[string]string{"job_id": job.ID})
	return r.CreateNotification(db, &models.Notification{
		UserID:  waiterUserID,
		Type:    NotificationTypeJobOffer,
		Title:   "New job offer",
		Message: "You have a new job offer: " + job.Position,
		Data:    datatypes.JSON(data),
	})
}

func (r *NotificationRepositoryImpl) CreateAccountApprovedNotification(db *gorm.DB, userID string) error {
	return r.CreateNotification(db, &models.Notification{
		UserID:  userID,
		Type:    NotificationTypeAccountApproved,
		Title:   "Account approved",
		Message: "Your profile has been approved. You can now use the marketplace.",
	})
}
