package middleware

import (
	"strings"

	"github.com/HenokhIS/You-Do/internal/constants"
	apierrors "github.com/HenokhIS/You-Do/internal/errors"
	"github.com/HenokhIS/You-Do/internal/services"
	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the bearer token on the Authorization header and
// stores the resolved user ID in the request context. Requests without a
// valid token never reach the handler.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "Authorization header must use the Bearer scheme")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, constants.BearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
