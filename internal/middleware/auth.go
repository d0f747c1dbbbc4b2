package middleware

import (
	"strings"

	"staynest/internal/auth"
	"staynest/internal/logger"
	"staynest/internal/models"
	"staynest/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.AbortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			apperrors.AbortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
// Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetRole(c)] {
			apperrors.AbortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin limits a /:id route to the subject user or an admin.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) == models.UserRoleAdmin {
			c.Next()
			return
		}
		if strings.TrimSpace(c.Param(param)) != GetUserID(c) {
			apperrors.AbortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}

// GetRole returns the authenticated user's role, or "" when unauthenticated.
func GetRole(c *gin.Context) models.UserRole {
	val, exists := c.Get(ContextRoleKey)
	if !exists {
		return ""
	}

	role, ok := val.(models.UserRole)
	if !ok {
		if s, isString := val.(string); isString {
			return models.UserRole(s)
		}
		return ""
	}
	return role
}
