package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/config"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserEmail = "userEmail"
)

// AuthMiddleware resolves the opaque bearer token against the
// auth_tokens table and loads the owning account into the request
// context. Missing or invalid tokens abort with 401 before any handler
// runs.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header", "Authorization header is required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header", "Authorization header must be a bearer token.")
			return
		}

		var token models.AuthToken
		if err := db.Preload("User").
			Where("key = ?", parts[1]).
			First(&token).Error; err != nil {
			abortUnauthorized(c, "invalid_token", "Invalid token.")
			return
		}

		if cfg.TokenTTL > 0 && time.Since(token.CreatedAt) > cfg.TokenTTL {
			abortUnauthorized(c, "token_expired", "Token has expired.")
			return
		}

		if !token.User.IsActive {
			abortUnauthorized(c, "inactive_account", "Account is inactive.")
			return
		}

		c.Set(ContextUserID, token.UserID)
		c.Set(ContextUserRole, string(token.User.Role))
		c.Set(ContextUserEmail, token.User.Email)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	httperr.Unauthorized(c, code, message)
	c.Abort()
}
