package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"servora_backend/internal/auth"
	"servora_backend/internal/models"
	"servora_backend/pkg/contextkeys"
)

// AuthMiddleware проверяет Bearer-токен и кладет claims в контекст запроса.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, claims.Role)
		c.Next()
	}
}

// roleFromContext возвращает роль, сохраненную AuthMiddleware.
// Claims типизированы, так что значение всегда models.UserRole.
func roleFromContext(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(contextkeys.RoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(models.UserRole)
	return role, ok
}

func requireRoleSet(allowed map[models.UserRole]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}
		c.Next()
	}
}

// RoleMiddleware пускает дальше только пользователей с указанной ролью.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return requireRoleSet(map[models.UserRole]bool{requiredRole: true})
}

// RequireRoles пускает дальше пользователей с любой из перечисленных ролей.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return requireRoleSet(allowed)
}

// GetUserID извлекает ID пользователя из контекста запроса.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}
