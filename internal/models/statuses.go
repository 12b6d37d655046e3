package models

type UserStatus string
type UserRole string
type OrderStatus string
type JobStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCustomer UserRole = "user"
	UserRoleVendor   UserRole = "vendor"
	UserRoleWaiter   UserRole = "waiter"
	UserRoleAdmin    UserRole = "admin"

	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"

	JobStatusPending    JobStatus = "pending"
	JobStatusAccepted   JobStatus = "accepted"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusDeclined   JobStatus = "declined"
	JobStatusCancelled  JobStatus = "cancelled"
)

// orderTransitions - таблица допустимых переходов статуса заказа.
// "refunded" достижим только через админский override, не через таблицу.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// jobTransitions - таблица допустимых переходов статуса оффера.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:    {JobStatusAccepted, JobStatusDeclined},
	JobStatusAccepted:   {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted},
	JobStatusCompleted:  {},
	JobStatusDeclined:   {},
	JobStatusCancelled:  {},
}

// IsValid проверяет, что статус известен таблице переходов
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo проверяет переход по таблице
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal - из терминального статуса переходов нет
func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

func (s JobStatus) IsValid() bool {
	_, ok := jobTransitions[s]
	return ok
}

func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s JobStatus) IsTerminal() bool {
	return s.IsValid() && len(jobTransitions[s]) == 0
}
