package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servora_backend/internal/models"
	"servora_backend/test/helpers"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"email":    "vendor@example.com",
		"password": "secret123",
		"name":     "Event Co",
		"role":     "vendor",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var registered struct {
		Token string `json:"access_token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "vendor", registered.User.Role)

	// Профиль исполнителя создан вместе с пользователем
	var profile models.VendorProfile
	err := ts.DB.Joins("JOIN users ON users.id = vendor_profiles.user_id").
		Where("users.email = ?", "vendor@example.com").First(&profile).Error
	require.NoError(t, err)
	assert.False(t, profile.IsApproved)

	// Повторная регистрация с тем же email - конфликт
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Логин с неверным паролем
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "vendor@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestSuspendedUserCannotLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Client", "client@example.com", "secret123", models.UserRoleCustomer)

	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", models.UserStatusSuspended).Error)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "client@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
