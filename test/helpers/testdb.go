package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servora_backend/internal/models"
)

// CreateUser создает пользователя, хешируя сырой пароль из PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	return db.Create(user).Error
}

// CreateAndLoginUser создает пользователя и логинит его через API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, db, user)
	require.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateVendorProfile заводит одобренный профиль исполнителя.
func CreateVendorProfile(t *testing.T, db *gorm.DB, userID, businessName string) *models.VendorProfile {
	profile := &models.VendorProfile{
		UserID:       userID,
		BusinessName: businessName,
		City:         "Almaty",
		IsApproved:   true,
		IsAvailable:  true,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Failed to create vendor profile: %v", err)
	}
	return profile
}

// CreateWaiterProfile заводит одобренный профиль официанта.
func CreateWaiterProfile(t *testing.T, db *gorm.DB, userID, fullName string) *models.WaiterProfile {
	profile := &models.WaiterProfile{
		UserID:      userID,
		FullName:    fullName,
		City:        "Almaty",
		HourlyRate:  2500,
		IsApproved:  true,
		IsAvailable: true,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Failed to create waiter profile: %v", err)
	}
	return profile
}

// CreateTestOrder создает заказ в заданном статусе напрямую в БД.
func CreateTestOrder(t *testing.T, db *gorm.DB, userID, vendorProfileID string, status models.OrderStatus) *models.Order {
	order := &models.Order{
		UserID:          userID,
		VendorProfileID: vendorProfileID,
		EventDate:       time.Now().AddDate(0, 0, 7),
		StartTime:       "18:00",
		EndTime:         "23:00",
		GuestCount:      40,
		Address:         "Abay Ave 10",
		QuotedPrice:     150000,
		Status:          status,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}
	return order
}

// CreateTestJob создает оффер в заданном статусе напрямую в БД.
func CreateTestJob(t *testing.T, db *gorm.DB, vendorProfileID, waiterProfileID string, status models.JobStatus) *models.Job {
	job := &models.Job{
		VendorProfileID: vendorProfileID,
		WaiterProfileID: waiterProfileID,
		Position:        "Waiter",
		EventDate:       time.Now().AddDate(0, 0, 7),
		StartTime:       "18:00",
		EndTime:         "23:00",
		HourlyRate:      2500,
		TotalHours:      5,
		TotalAmount:     12500,
		Address:         "Abay Ave 10",
		Status:          status,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}
