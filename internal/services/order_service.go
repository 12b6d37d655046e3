package services

import (
	"fmt"

	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

type OrderService interface {
	CreateOrder(db *gorm.DB, userID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	// TransitionOrder переводит заказ в новый статус строго по таблице
	// переходов. Недопустимое ребро — отказ, статус не меняется.
	TransitionOrder(db *gorm.DB, orderID, actorID string, req *dto.TransitionOrderRequest) (*dto.OrderResponse, error)
	// RefundOrder — административный обход таблицы переходов.
	// Единственный способ попасть в refunded.
	RefundOrder(db *gorm.DB, orderID, adminID string) (*dto.OrderResponse, error)
	GetOrder(db *gorm.DB, orderID, actorID string) (*dto.OrderResponse, error)
	GetUserOrders(db *gorm.DB, userID string, page, pageSize int) (*dto.OrderListResponse, error)
	GetVendorOrders(db *gorm.DB, vendorUserID string, page, pageSize int) (*dto.OrderListResponse, error)
}

type OrderServiceImpl struct {
	orderRepo    repositories.OrderRepository
	profileRepo  repositories.ProfileRepository
	userRepo     repositories.UserRepository
	catalogRepo  repositories.CatalogRepository
	notification NotificationService
	transact     txRunner
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	catalogRepo repositories.CatalogRepository,
	notification NotificationService,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:    orderRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		notification: notification,
		transact:     gormTransact,
	}
}

func (s *OrderServiceImpl) CreateOrder(db *gorm.DB, userID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleCustomer {
		return nil, apperrors.ErrInvalidUserRole
	}

	vendor, err := s.profileRepo.FindVendorByID(db, req.VendorProfileID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved || !vendor.IsAvailable {
		return nil, apperrors.ErrVendorNotAvailable
	}

	if req.EventTypeID != nil {
		if _, err := s.catalogRepo.FindEventTypeByID(db, *req.EventTypeID); err != nil {
			return nil, err
		}
	}

	// Валидируем интервал уже сейчас, а не при завершении
	if _, err := models.HoursBetween(req.StartTime, req.EndTime); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	order := &models.Order{
		UserID:          userID,
		VendorProfileID: req.VendorProfileID,
		EventTypeID:     req.EventTypeID,
		EventDate:       req.EventDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		GuestCount:      req.GuestCount,
		Address:         req.Address,
		Notes:           req.Notes,
		QuotedPrice:     req.QuotedPrice,
		Status:          models.OrderStatusPending,
	}

	// Заказ и счетчик вендора — одна атомарная единица
	err = s.transact(db, func(tx *gorm.DB) error {
		if err := s.orderRepo.CreateOrder(tx, order); err != nil {
			return err
		}
		return s.profileRepo.IncrementVendorTotalOrders(tx, order.VendorProfileID)
	})
	if err != nil {
		return nil, err
	}

	go s.notification.NotifyBookingReceived(db, order)

	return toOrderResponse(order), nil
}

func (s *OrderServiceImpl) TransitionOrder(db *gorm.DB, orderID, actorID string, req *dto.TransitionOrderRequest) (*dto.OrderResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown order status %q", req.Status))
	}

	actor, err := s.userRepo.FindByID(db, actorID)
	if err != nil {
		return nil, err
	}

	var updated *models.Order
	err = s.transact(db, func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindOrderByIDForUpdate(tx, orderID)
		if err != nil {
			return err
		}

		if err := s.authorizeOrderTransition(tx, order, actor, req.Status); err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(req.Status) {
			return apperrors.ErrInvalidTransition("order",
				fmt.Sprintf("переход %s -> %s недопустим", order.Status, req.Status))
		}

		order.Status = req.Status
		if req.FinalPrice != nil {
			order.FinalPrice = req.FinalPrice
		}
		if err := s.orderRepo.UpdateOrder(tx, order); err != nil {
			return err
		}

		if req.Status == models.OrderStatusCompleted {
			if err := s.profileRepo.IncrementVendorCompletedOrders(tx, order.VendorProfileID); err != nil {
				return err
			}
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == models.OrderStatusConfirmed {
		go s.notification.NotifyBookingConfirmed(db, updated)
	}

	return toOrderResponse(updated), nil
}

// authorizeOrderTransition: подтверждение и ход работ — сторона вендора,
// отмена доступна обеим сторонам, админ может всё.
func (s *OrderServiceImpl) authorizeOrderTransition(db *gorm.DB, order *models.Order, actor *models.User, target models.OrderStatus) error {
	if actor.Role == models.UserRoleAdmin {
		return nil
	}

	isCustomer := actor.ID == order.UserID
	isVendor := false
	if actor.Role == models.UserRoleVendor {
		vendor, err := s.profileRepo.FindVendorByUserID(db, actor.ID)
		if err == nil && vendor.ID == order.VendorProfileID {
			isVendor = true
		}
	}

	if !isCustomer && !isVendor {
		return apperrors.ErrNotPartyToTransaction
	}

	switch target {
	case models.OrderStatusConfirmed, models.OrderStatusInProgress, models.OrderStatusCompleted:
		if !isVendor {
			return apperrors.ErrInsufficientPermissions
		}
	case models.OrderStatusCancelled:
		// обе стороны
	default:
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *OrderServiceImpl) RefundOrder(db *gorm.DB, orderID, adminID string) (*dto.OrderResponse, error) {
	admin, err := s.userRepo.FindByID(db, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	var updated *models.Order
	err = s.transact(db, func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindOrderByIDForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.OrderStatusRefunded {
			return apperrors.ErrOrderAlreadyRefunded
		}
		order.Status = models.OrderStatusRefunded
		if err := s.orderRepo.UpdateOrder(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

func (s *OrderServiceImpl) GetOrder(db *gorm.DB, orderID, actorID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindOrderByID(db, orderID)
	if err != nil {
		return nil, err
	}
	actor, err := s.userRepo.FindByID(db, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.UserRoleAdmin && actor.ID != order.UserID {
		vendor, err := s.profileRepo.FindVendorByUserID(db, actor.ID)
		if err != nil || vendor.ID != order.VendorProfileID {
			return nil, apperrors.ErrNotPartyToTransaction
		}
	}
	return toOrderResponse(order), nil
}

func (s *OrderServiceImpl) GetUserOrders(db *gorm.DB, userID string, page, pageSize int) (*dto.OrderListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	orders, total, err := s.orderRepo.FindOrdersByUser(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, total, page, pageSize), nil
}

func (s *OrderServiceImpl) GetVendorOrders(db *gorm.DB, vendorUserID string, page, pageSize int) (*dto.OrderListResponse, error) {
	vendor, err := s.profileRepo.FindVendorByUserID(db, vendorUserID)
	if err != nil {
		return nil, err
	}
	page, pageSize = normalizePagination(page, pageSize)
	orders, total, err := s.orderRepo.FindOrdersByVendor(db, vendor.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, total, page, pageSize), nil
}

func toOrderResponse(o *models.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		VendorProfileID: o.VendorProfileID,
		EventTypeID:     o.EventTypeID,
		EventDate:       o.EventDate,
		StartTime:       o.StartTime,
		EndTime:         o.EndTime,
		GuestCount:      o.GuestCount,
		Address:         o.Address,
		Notes:           o.Notes,
		QuotedPrice:     o.QuotedPrice,
		FinalPrice:      o.FinalPrice,
		Status:          o.Status,
		IsRated:         o.IsRated,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toOrderListResponse(orders []models.Order, total int64, page, pageSize int) *dto.OrderListResponse {
	resp := &dto.OrderListResponse{
		Orders:     make([]*dto.OrderResponse, 0, len(orders)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&orders[i]))
	}
	return resp
}
