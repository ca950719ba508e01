package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/auth"
	"github.com/journali/journal-api/internal/constants"
	apierrors "github.com/journali/journal-api/internal/errors"
)

// RequireAuth checks the Authorization header for a valid bearer token
// and stores the resolved user ID in the request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
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
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}
