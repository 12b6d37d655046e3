package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servora_backend/internal/repositories"
	"servora_backend/pkg/apperrors"
)

func newErrorTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/ratings/missing", nil)
	return c, rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorCode {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

// Сигнальные "не найдено" ошибки репозиториев должны выходить наружу
// типизированным 404, а не 500.
func TestHandleServiceErrorTranslatesNotFound(t *testing.T) {
	h := &BaseHandler{}

	for _, sentinel := range []error{
		repositories.ErrRatingNotFound,
		repositories.ErrOrderNotFound,
		repositories.ErrJobNotFound,
		repositories.ErrProfileNotFound,
		repositories.ErrCatalogEntryNotFound,
		repositories.ErrUserNotFound,
		repositories.ErrNotificationNotFound,
	} {
		c, rec := newErrorTestContext()
		h.HandleServiceError(c, sentinel)

		assert.Equal(t, http.StatusNotFound, rec.Code, sentinel.Error())
		assert.Equal(t, apperrors.CodeNotFound, decodeErrorCode(t, rec), sentinel.Error())
	}
}

func TestHandleServiceErrorKeepsAppErrors(t *testing.T) {
	h := &BaseHandler{}

	c, rec := newErrorTestContext()
	h.HandleServiceError(c, apperrors.ErrDuplicateRating)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apperrors.CodeAlreadyExists, decodeErrorCode(t, rec))

	c, rec = newErrorTestContext()
	h.HandleServiceError(c, apperrors.ErrNotPartyToTransaction)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleServiceErrorUnknownIsInternal(t *testing.T) {
	h := &BaseHandler{}

	c, rec := newErrorTestContext()
	h.HandleServiceError(c, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperrors.CodeInternalError, decodeErrorCode(t, rec))
}
