package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servora_backend/internal/models"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

type orderFixture struct {
	svc      *OrderServiceImpl
	orders   *fakeOrderRepo
	profiles *fakeProfileRepo

	customer *models.User
	vendor   *models.User
	admin    *models.User
	stranger *models.User

	vendorProfile *models.VendorProfile
}

func newOrderFixture() *orderFixture {
	customer := &models.User{Role: models.UserRoleCustomer}
	customer.ID = "user-customer"
	vendor := &models.User{Role: models.UserRoleVendor}
	vendor.ID = "user-vendor"
	admin := &models.User{Role: models.UserRoleAdmin}
	admin.ID = "user-admin"
	stranger := &models.User{Role: models.UserRoleCustomer}
	stranger.ID = "user-stranger"

	vendorProfile := &models.VendorProfile{
		UserID:      vendor.ID,
		IsApproved:  true,
		IsAvailable: true,
	}
	vendorProfile.ID = "vp-1"

	orders := &fakeOrderRepo{orders: map[string]*models.Order{}}
	profiles := &fakeProfileRepo{
		vendors: map[string]*models.VendorProfile{vendorProfile.ID: vendorProfile},
		waiters: map[string]*models.WaiterProfile{},
	}
	users := &fakeUserRepo{users: map[string]*models.User{
		customer.ID: customer,
		vendor.ID:   vendor,
		admin.ID:    admin,
		stranger.ID: stranger,
	}}

	svc := &OrderServiceImpl{
		orderRepo:    orders,
		profileRepo:  profiles,
		userRepo:     users,
		notification: fakeNotifier{},
		transact:     passTx,
	}
	return &orderFixture{
		svc:           svc,
		orders:        orders,
		profiles:      profiles,
		customer:      customer,
		vendor:        vendor,
		admin:         admin,
		stranger:      stranger,
		vendorProfile: vendorProfile,
	}
}

func (f *orderFixture) seedOrder(status models.OrderStatus) *models.Order {
	order := &models.Order{
		UserID:          f.customer.ID,
		VendorProfileID: f.vendorProfile.ID,
		Status:          status,
	}
	order.ID = "order-1"
	f.orders.orders[order.ID] = order
	return order
}

func TestTransitionOrderHappyPath(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(models.OrderStatusPending)

	for _, status := range []models.OrderStatus{
		models.OrderStatusConfirmed, models.OrderStatusInProgress, models.OrderStatusCompleted,
	} {
		resp, err := f.svc.TransitionOrder(nil, order.ID, f.vendor.ID, &dto.TransitionOrderRequest{Status: status})
		require.NoError(t, err, status)
		assert.Equal(t, status, resp.Status)
	}

	assert.Equal(t, int64(1), f.vendorProfile.CompletedOrders)
}

func TestTransitionOrderRejectsIllegalEdge(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(models.OrderStatusPending)

	_, err := f.svc.TransitionOrder(nil, order.ID, f.vendor.ID, &dto.TransitionOrderRequest{Status: models.OrderStatusCompleted})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)

	// Статус не изменился
	assert.Equal(t, models.OrderStatusPending, f.orders.orders[order.ID].Status)
}

func TestTransitionOrderUnknownStatus(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(models.OrderStatusPending)

	_, err := f.svc.TransitionOrder(nil, order.ID, f.vendor.ID, &dto.TransitionOrderRequest{Status: "shipped"})
	assert.Error(t, err)
}

func TestTransitionOrderRolePolicy(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(models.OrderStatusPending)

	// Клиент не подтверждает свой заказ
	_, err := f.svc.TransitionOrder(nil, order.ID, f.customer.ID, &dto.TransitionOrderRequest{Status: models.OrderStatusConfirmed})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Посторонний вообще не сторона сделки
	_, err = f.svc.TransitionOrder(nil, order.ID, f.stranger.ID, &dto.TransitionOrderRequest{Status: models.OrderStatusCancelled})
	assert.ErrorIs(t, err, apperrors.ErrNotPartyToTransaction)

	// Отмена доступна клиенту
	_, err = f.svc.TransitionOrder(nil, order.ID, f.customer.ID, &dto.TransitionOrderRequest{Status: models.OrderStatusCancelled})
	assert.NoError(t, err)
}

func TestTransitionOrderAdminBypassesRoles(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(models.OrderStatusPending)

	_, err := f.svc.TransitionOrder(nil, order.ID, f.admin.ID, &dto.TransitionOrderRequest{Status: models.OrderStatusConfirmed})
	assert.NoError(t, err)

	// Но таблица переходов обязательна и для админа
	_, err = f.svc.TransitionOrder(nil, order.ID, f.admin.ID, &dto.TransitionOrderRequest{Status: models.OrderStatusPending})
	assert.Error(t, err)
}

func TestRefundOrder(t *testing.T) {
	f := newOrderFixture()
	order := f.seedOrder(models.OrderStatusCompleted)

	// Только админ
	_, err := f.svc.RefundOrder(nil, order.ID, f.customer.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	resp, err := f.svc.RefundOrder(nil, order.ID, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusRefunded, resp.Status)

	_, err = f.svc.RefundOrder(nil, order.ID, f.admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrOrderAlreadyRefunded)
}

func TestCreateOrderCountsTowardVendor(t *testing.T) {
	f := newOrderFixture()

	req := &dto.CreateOrderRequest{
		VendorProfileID: f.vendorProfile.ID,
		StartTime:       "18:00",
		EndTime:         "23:00",
		GuestCount:      30,
		Address:         "Main St 1",
		QuotedPrice:     100000,
	}
	resp, err := f.svc.CreateOrder(nil, f.customer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, resp.Status)
	assert.Equal(t, int64(1), f.vendorProfile.TotalOrders)

	// Исполнитель не может заказывать сам у себя от роли vendor
	_, err = f.svc.CreateOrder(nil, f.vendor.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	// Недоступный исполнитель не бронируется
	f.vendorProfile.IsAvailable = false
	_, err = f.svc.CreateOrder(nil, f.customer.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrVendorNotAvailable)
}
