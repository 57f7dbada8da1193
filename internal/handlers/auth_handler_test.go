package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/config"
	"github.com/winnyfit/booking-api/internal/models"
	"github.com/winnyfit/booking-api/internal/routes"
	"github.com/winnyfit/booking-api/internal/testdb"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	return newTestServerWithConfig(t, &config.Config{Timezone: "UTC"})
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerCustomer(t *testing.T, r *gin.Engine, email string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/customers/register", "", gin.H{
		"user": gin.H{
			"firstname": "Kasun",
			"lastname":  "Silva",
			"email":     email,
			"password":  "secret123",
		},
		"contact_number": "0711111111",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func signIn(t *testing.T, r *gin.Engine, email, password string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signin", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		return "", w
	}
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, w
}

func TestSignInIssuesStableToken(t *testing.T) {
	r, _ := newTestServer(t)
	registerCustomer(t, r, "kasun@example.com")

	first, w := signIn(t, r, "kasun@example.com", "secret123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotEmpty(t, first)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "kasun@example.com", resp["email"])
	assert.Equal(t, "Kasun", resp["name"])
	assert.Equal(t, "customer", resp["role"])

	second, w := signIn(t, r, "kasun@example.com", "secret123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, second, "re-authentication must reuse the persistent token")
}

func TestSignInRotatesExpiredToken(t *testing.T) {
	r, db := newTestServerWithConfig(t, &config.Config{
		Timezone: "UTC",
		TokenTTL: time.Hour,
	})
	registerCustomer(t, r, "kasun@example.com")

	first, w := signIn(t, r, "kasun@example.com", "secret123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Age the token past the TTL; the middleware now rejects it.
	expiredAt := time.Now().Add(-2 * time.Hour)
	require.NoError(t, db.Model(&models.AuthToken{}).
		Where("key = ?", first).
		Update("created_at", expiredAt).Error)

	w = doJSON(t, r, http.MethodGet, "/me", first, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Re-authenticating must issue a fresh, working key rather than
	// handing back the expired one.
	second, w := signIn(t, r, "kasun@example.com", "secret123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEqual(t, first, second)

	w = doJSON(t, r, http.MethodGet, "/me", second, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	db.Model(&models.AuthToken{}).Count(&count)
	assert.EqualValues(t, 1, count, "expired token row must be replaced, not accumulated")
}

func TestSignInDoesNotLeakWhichFieldFailed(t *testing.T) {
	r, _ := newTestServer(t)
	registerCustomer(t, r, "kasun@example.com")

	_, badPassword := signIn(t, r, "kasun@example.com", "wrong")
	_, unknownEmail := signIn(t, r, "ghost@example.com", "secret123")

	assert.Equal(t, http.StatusBadRequest, badPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.JSONEq(t, badPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must be indistinguishable")
}

func TestSignInNormalizesEmail(t *testing.T) {
	r, _ := newTestServer(t)
	registerCustomer(t, r, "kasun@example.com")

	token, w := signIn(t, r, "  KASUN@Example.COM ", "secret123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, token)
}

func TestSignOutIsIdempotent(t *testing.T) {
	r, db := newTestServer(t)
	registerCustomer(t, r, "kasun@example.com")
	token, _ := signIn(t, r, "kasun@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/signout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.AuthToken{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// Second sign-out with the already-revoked token still succeeds.
	w = doJSON(t, r, http.MethodPost, "/signout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// And so does signing out with no token at all.
	w = doJSON(t, r, http.MethodPost, "/signout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newTestServer(t)
	registerCustomer(t, r, "kasun@example.com")

	w := doJSON(t, r, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _ := signIn(t, r, "kasun@example.com", "secret123")
	w = doJSON(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "kasun@example.com", resp["email"])
	assert.Equal(t, "customer", resp["role"])
	assert.Equal(t, true, resp["is_active"])
}
