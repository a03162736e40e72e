package auth

import (
	"net/http"

	"calldex_backend/internal/auth/repository"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityLoader returns middleware that resolves the verified token subject
// to a full user record and stores it on the context. Runs after
// httpkit.AuthRequired; search and spam handlers need the requester's own
// phone number, not just the ID.
func IdentityLoader(users repository.UserReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := c.Get(httpkit.ContextUserIDKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, ok := raw.(uuid.UUID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
			return
		}

		httpkit.SetIdentity(c, user.ID, user.Name, user.PhoneNumber, user.Email)
		c.Next()
	}
}
