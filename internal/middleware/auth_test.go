package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"servora_backend/internal/models"
	"servora_backend/pkg/contextkeys"
)

func runRoleCheck(t *testing.T, mw gin.HandlerFunc, setup func(c *gin.Context)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	if setup != nil {
		setup(c)
	}
	mw(c)
	return c
}

func TestRoleMiddleware(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		c := runRoleCheck(t, RoleMiddleware(models.UserRoleAdmin), func(c *gin.Context) {
			c.Set(contextkeys.RoleKey, models.UserRoleAdmin)
		})
		assert.False(t, c.IsAborted())
	})

	t.Run("other role is rejected", func(t *testing.T) {
		c := runRoleCheck(t, RoleMiddleware(models.UserRoleAdmin), func(c *gin.Context) {
			c.Set(contextkeys.RoleKey, models.UserRoleCustomer)
		})
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, c.Writer.Status())
	})

	t.Run("missing role is rejected", func(t *testing.T) {
		c := runRoleCheck(t, RoleMiddleware(models.UserRoleAdmin), nil)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, c.Writer.Status())
	})
}

func TestRequireRoles(t *testing.T) {
	mw := RequireRoles(models.UserRoleVendor, models.UserRoleWaiter)

	c := runRoleCheck(t, mw, func(c *gin.Context) {
		c.Set(contextkeys.RoleKey, models.UserRoleWaiter)
	})
	assert.False(t, c.IsAborted())

	c = runRoleCheck(t, mw, func(c *gin.Context) {
		c.Set(contextkeys.RoleKey, models.UserRoleCustomer)
	})
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, c.Writer.Status())
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetUserID(c))

	c.Set(contextkeys.UserIDKey, "user-1")
	assert.Equal(t, "user-1", GetUserID(c))
}
