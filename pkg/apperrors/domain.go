package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные функции
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition - переход статуса не разрешен таблицей переходов (409)
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// =========================================================================
// Booking (Order / Job)
// =========================================================================

// ErrNotPartyToTransaction - актор не является стороной сделки.
var ErrNotPartyToTransaction = New(
	CodeForbidden,
	"booking",
	"You are not a party to this transaction",
	http.StatusForbidden,
)

// ErrVendorNotAvailable - профиль исполнителя не одобрен или недоступен.
var ErrVendorNotAvailable = New(
	CodeInvalidOperation,
	"booking",
	"Vendor is not approved or not available for booking",
	http.StatusBadRequest,
)

// ErrWaiterNotAvailable - профиль официанта не одобрен или недоступен.
var ErrWaiterNotAvailable = New(
	CodeInvalidOperation,
	"booking",
	"Waiter is not approved or not available for job offers",
	http.StatusBadRequest,
)

// ErrOrderAlreadyRefunded - повторный возврат невозможен.
var ErrOrderAlreadyRefunded = New(
	CodeInvalidStatus,
	"booking",
	"Order is already refunded",
	http.StatusConflict,
)

// =========================================================================
// Rating
// =========================================================================

// ErrRatingNotEligible - нет завершенной сделки между сторонами.
var ErrRatingNotEligible = New(
	CodeInvalidOperation,
	"rating",
	"Rating requires a completed transaction between you and the target",
	http.StatusBadRequest,
)

// ErrDuplicateRating - активный отзыв по этой сделке уже есть.
var ErrDuplicateRating = New(
	CodeAlreadyExists,
	"rating",
	"An active rating for this transaction already exists",
	http.StatusConflict,
)

// ErrRatingAlreadyResponded - ответ на отзыв пишется один раз.
var ErrRatingAlreadyResponded = New(
	CodeConflict,
	"rating",
	"This rating has already been responded to",
	http.StatusConflict,
)

// ErrRatingAlreadyReported - отзыв уже помечен как нарушающий.
var ErrRatingAlreadyReported = New(
	CodeConflict,
	"rating",
	"This rating has already been reported",
	http.StatusConflict,
)

// ErrRatingTargetMismatch - цель отзыва не соответствует типу сделки.
var ErrRatingTargetMismatch = New(
	CodeValidationFailed,
	"rating",
	"Rating target does not match the transaction type",
	http.StatusBadRequest,
)

// =========================================================================
// Общие доменные ошибки
// =========================================================================

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrProfileNotApproved - профиль еще не одобрен администратором.
var ErrProfileNotApproved = New(
	CodeForbidden,
	"profile",
	"Profile has not been approved yet",
	http.StatusForbidden,
)

// =========================================================================
// Auth & User Status
// =========================================================================

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (verify, reset).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserSuspended - аккаунт временно заблокирован.
var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

// ErrUserBanned - аккаунт забанен.
var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)
