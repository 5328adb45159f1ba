package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/models"
	"jobboard/pkg/apperrors"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUserRoleKey = "user_role"
)

// AuthMiddleware requires a valid Bearer token and stashes the caller's
// identity in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves identity when a token is present but lets
// anonymous requests through. The public job pages use it for the
// has_applied flag.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearer(c); err == nil {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextUserRoleKey, claims.Role)
		}
		c.Next()
	}
}

// RequireRoles allows only the listed roles past. Mount after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(ContextUserRoleKey))
		if _, ok := allowed[role]; !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, empty for anonymous requests.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func GetUserRole(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString(ContextUserRoleKey))
}

func parseBearer(c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, auth.ErrInvalidToken
	}
	return auth.ParseToken(token)
}
