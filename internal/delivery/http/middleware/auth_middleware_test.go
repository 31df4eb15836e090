package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/infra/auth"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-signing"
	cfg.JWT.Issuer = "backoffice"
	cfg.JWT.Audience = "backoffice-admin"

	return cfg
}

func newProtectedServer(t *testing.T) (*echo.Echo, string) {
	cfg := testTokenConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mw := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		adminID := c.Get(ContextKeyAdminID).(uuid.UUID)

		return c.String(http.StatusOK, adminID.String())
	}, mw.Authenticate, mw.RequireRole(entity.RoleAdmin.String()))

	token, err := tokenSvc.Issue(&entity.Admin{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	return e, token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e, _ := newProtectedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	e, token := newProtectedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	e, _ := newProtectedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, token := newProtectedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// A validly signed token with a non-admin role must clear Authenticate
// but be stopped by RequireRole.
func TestAuthMiddleware_WrongRole(t *testing.T) {
	e, _ := newProtectedServer(t)
	cfg := testTokenConfig()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"name": "mallory",
		"role": "Viewer",
		"iss":  cfg.JWT.Issuer,
		"aud":  cfg.JWT.Audience,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
