package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/pkg/apperrors"
	"jobboard/pkg/contextkeys"
)

// RequireCompletedProfile blocks users whose profile is still incomplete.
// The gate is composed per route group at the routing layer; routes that
// should stay reachable with an incomplete profile simply don't mount it.
// Admins always pass.
func RequireCompletedProfile(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		if GetUserRole(c) == models.UserRoleAdmin {
			c.Next()
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("database handle missing from context")))
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(db, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			} else {
				apperrors.HandleError(c, err)
			}
			c.Abort()
			return
		}

		if !user.ProfileCompleted {
			apperrors.HandleError(c, apperrors.ErrProfileIncomplete)
			c.Abort()
			return
		}

		c.Next()
	}
}
