package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servora_backend/internal/models"
	"servora_backend/test/helpers"
)

func submitOrderRating(t *testing.T, ts *helpers.TestServer, token, orderID string, score int) (*http.Response, string) {
	t.Helper()
	return ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", token, map[string]interface{}{
		"target_type": "vendor",
		"order_id":    orderID,
		"score":       score,
		"review_text": "Great service",
	})
}

func TestSubmitRatingAggregates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	clientToken, clientUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Client", "client@example.com", "secret123", models.UserRoleCustomer)
	_, vendorUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Vendor", "vendor@example.com", "secret123", models.UserRoleVendor)
	vendorProfile := helpers.CreateVendorProfile(t, ts.DB, vendorUser.ID, "Event Co")

	first := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusCompleted)
	second := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusCompleted)
	third := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusCompleted)

	res, body := submitOrderRating(t, ts, clientToken, first.ID, 4)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var profile models.VendorProfile
	require.NoError(t, ts.DB.First(&profile, "id = ?", vendorProfile.ID).Error)
	assert.Equal(t, 4.0, profile.AverageRating)
	assert.Equal(t, int64(1), profile.TotalRatings)

	// Среднее 4.5 хранится точно
	res, body = submitOrderRating(t, ts, clientToken, second.ID, 5)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	require.NoError(t, ts.DB.First(&profile, "id = ?", vendorProfile.ID).Error)
	assert.Equal(t, 4.5, profile.AverageRating)

	// 13/3 = 4.333..., округляется вверх до десятой
	res, body = submitOrderRating(t, ts, clientToken, third.ID, 4)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	require.NoError(t, ts.DB.First(&profile, "id = ?", vendorProfile.ID).Error)
	assert.Equal(t, 4.4, profile.AverageRating)
	assert.Equal(t, int64(3), profile.TotalRatings)
}

func TestRatingEligibilityAndDuplicates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	clientToken, clientUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Client", "client@example.com", "secret123", models.UserRoleCustomer)
	_, vendorUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Vendor", "vendor@example.com", "secret123", models.UserRoleVendor)
	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, "Stranger", "stranger@example.com", "secret123", models.UserRoleCustomer)
	vendorProfile := helpers.CreateVendorProfile(t, ts.DB, vendorUser.ID, "Event Co")

	pending := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusPending)
	completed := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusCompleted)

	// Отзыв возможен только по завершенной сделке
	res, _ := submitOrderRating(t, ts, clientToken, pending.ID, 5)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Не участник сделки не может оставить отзыв
	res, _ = submitOrderRating(t, ts, strangerToken, completed.ID, 5)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := submitOrderRating(t, ts, clientToken, completed.ID, 5)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Второй активный отзыв по той же сделке запрещен
	res, _ = submitOrderRating(t, ts, clientToken, completed.ID, 3)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestRetractRatingRecomputesAggregates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	clientToken, clientUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Client", "client@example.com", "secret123", models.UserRoleCustomer)
	_, vendorUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Vendor", "vendor@example.com", "secret123", models.UserRoleVendor)
	vendorProfile := helpers.CreateVendorProfile(t, ts.DB, vendorUser.ID, "Event Co")
	order := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusCompleted)

	res, body := submitOrderRating(t, ts, clientToken, order.ID, 5)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var rating struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rating))

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/ratings/"+rating.ID, clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Агрегаты обнулились
	var profile models.VendorProfile
	require.NoError(t, ts.DB.First(&profile, "id = ?", vendorProfile.ID).Error)
	assert.Equal(t, 0.0, profile.AverageRating)
	assert.Equal(t, int64(0), profile.TotalRatings)

	// После отзыва отзыва сделку можно оценить заново
	res, body = submitOrderRating(t, ts, clientToken, order.ID, 3)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	require.NoError(t, ts.DB.First(&profile, "id = ?", vendorProfile.ID).Error)
	assert.Equal(t, 3.0, profile.AverageRating)
}

func TestRespondAndReportWriteOnce(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	clientToken, clientUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Client", "client@example.com", "secret123", models.UserRoleCustomer)
	vendorToken, vendorUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Vendor", "vendor@example.com", "secret123", models.UserRoleVendor)
	vendorProfile := helpers.CreateVendorProfile(t, ts.DB, vendorUser.ID, "Event Co")
	order := helpers.CreateTestOrder(t, ts.DB, clientUser.ID, vendorProfile.ID, models.OrderStatusCompleted)

	res, body := submitOrderRating(t, ts, clientToken, order.ID, 2)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var rating struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rating))

	respondPath := fmt.Sprintf("/api/v1/ratings/%s/response", rating.ID)

	// Отвечает только оцененная сторона
	res, _ = ts.SendRequest(t, http.MethodPost, respondPath, clientToken, map[string]interface{}{"response": "Thanks"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, respondPath, vendorToken, map[string]interface{}{"response": "Sorry to hear that"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Ответ пишется один раз
	res, _ = ts.SendRequest(t, http.MethodPost, respondPath, vendorToken, map[string]interface{}{"response": "Second attempt"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	reportPath := fmt.Sprintf("/api/v1/ratings/%s/report", rating.ID)
	res, body = ts.SendRequest(t, http.MethodPost, reportPath, vendorToken, map[string]interface{}{"reason": "Offensive language"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, reportPath, vendorToken, map[string]interface{}{"reason": "Again"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestGetMissingRatingReturns404(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/ratings/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestWaiterRatingWithAttitude(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	vendorToken, vendorUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Vendor", "vendor@example.com", "secret123", models.UserRoleVendor)
	_, waiterUser := helpers.CreateAndLoginUser(t, ts, ts.DB, "Waiter", "waiter@example.com", "secret123", models.UserRoleWaiter)
	vendorProfile := helpers.CreateVendorProfile(t, ts.DB, vendorUser.ID, "Event Co")
	waiterProfile := helpers.CreateWaiterProfile(t, ts.DB, waiterUser.ID, "John Waiter")

	job := helpers.CreateTestJob(t, ts.DB, vendorProfile.ID, waiterProfile.ID, models.JobStatusCompleted)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/ratings", vendorToken, map[string]interface{}{
		"target_type":    "waiter",
		"job_id":         job.ID,
		"score":          5,
		"attitude_score": 4,
		"punctuality":    5,
		"quality":        4,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var profile models.WaiterProfile
	require.NoError(t, ts.DB.First(&profile, "id = ?", waiterProfile.ID).Error)
	assert.Equal(t, 5.0, profile.AverageRating)
	assert.Equal(t, 4.0, profile.AttitudeRating)
	assert.Equal(t, int64(1), profile.TotalRatings)
}
