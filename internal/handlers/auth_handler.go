package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/config"
	account "github.com/winnyfit/booking-api/internal/domain/account"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/httpresp"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// SignIn checks the credential and returns the account's persistent
// token. Unknown email and wrong password produce the same response:
// nothing leaks about which one failed.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.UserAccount
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := h.getOrCreateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token.Key,
		"email": user.Email,
		"name":  user.FirstName,
		"role":  user.Role,
	})
}

// SignOut revokes the presented token. Best-effort and idempotent: a
// missing or already-revoked token is swallowed, never an error, so
// signing out twice in a row always succeeds.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if key, ok := bearerToken(c); ok {
		h.db.Where("key = ?", key).Delete(&models.AuthToken{})
	}

	httpresp.Message(c, http.StatusOK, "Successfully logged out.")
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// --------- Token issuance ---------

// getOrCreateToken returns the account's existing token, creating one
// only when none exists. Signing in twice yields the same key. A token
// past its TTL is rotated here: handing back a key the middleware
// already rejects would lock the account out for good.
func (h *AuthHandler) getOrCreateToken(user *models.UserAccount) (*models.AuthToken, error) {
	var token models.AuthToken

	err := h.db.Where("user_id = ?", user.ID).First(&token).Error
	if err == nil {
		if !h.tokenExpired(&token) {
			return &token, nil
		}
		if err := h.db.Delete(&token).Error; err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.AuthToken{
		Key:    account.NewTokenKey(),
		UserID: user.ID,
	}
	if err := h.db.Create(&token).Error; err != nil {
		// A concurrent sign-in may have won the unique user_id race;
		// the committed row is the token to hand out.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if ferr := h.db.Where("user_id = ?", user.ID).First(&token).Error; ferr == nil {
				return &token, nil
			}
		}
		return nil, err
	}

	return &token, nil
}

func (h *AuthHandler) tokenExpired(token *models.AuthToken) bool {
	return h.config.TokenTTL > 0 && time.Since(token.CreatedAt) > h.config.TokenTTL
}
