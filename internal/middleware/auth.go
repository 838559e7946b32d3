package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"luvo_backend/internal/auth"
	"luvo_backend/internal/logger"
	"luvo_backend/internal/models"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

func abortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// AuthMiddleware validates the Bearer token and stores the user id and
// role on the gin context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects requests whose token role is not in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortWith(c, http.StatusForbidden, "Access denied")
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || !roleSet[models.UserRole(roleStr)] {
			abortWith(c, http.StatusForbidden, "Access denied")
			return
		}

		c.Next()
	}
}
