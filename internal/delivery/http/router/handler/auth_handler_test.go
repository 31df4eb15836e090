package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/validator"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

// stubAuthUsecase lets each test script the usecase outcome.
type stubAuthUsecase struct {
	loginOutput    *usecase.AuthOutput
	loginErr       error
	registerOutput *usecase.AuthOutput
	registerErr    error

	lastLogin    *usecase.LoginInput
	lastRegister *usecase.RegisterInput
}

func (s *stubAuthUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	s.lastLogin = input

	return s.loginOutput, s.loginErr
}

func (s *stubAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	s.lastRegister = input

	return s.registerOutput, s.registerErr
}

func newAuthTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/register", h.Register)

	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &stubAuthUsecase{
		loginOutput: &usecase.AuthOutput{Token: "signed.jwt.token", Username: "alice"},
	}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"alice","password":"secret-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	require.NotNil(t, uc.lastLogin)
	assert.Equal(t, "alice", uc.lastLogin.Username)
	assert.Equal(t, "secret-password", uc.lastLogin.Password)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubAuthUsecase{
		loginErr: errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"),
	}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	uc := &stubAuthUsecase{}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Nil(t, uc.lastLogin, "usecase must not run on invalid input")
}

func TestAuthHandler_Login_StoreFailureIsServerError(t *testing.T) {
	uc := &stubAuthUsecase{
		loginErr: errors.New("connection refused"),
	}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"alice","password":"secret-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := &stubAuthUsecase{
		registerOutput: &usecase.AuthOutput{Token: "signed.jwt.token", Username: "bob"},
	}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"bob","password":"secret-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	uc := &stubAuthUsecase{
		registerErr: errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered"),
	}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"alice","password":"secret-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
}

// Password strength is not enforced at the API boundary; any non-empty
// password is passed through to the usecase.
func TestAuthHandler_Register_ShortPasswordAccepted(t *testing.T) {
	uc := &stubAuthUsecase{
		registerOutput: &usecase.AuthOutput{Token: "signed.jwt.token", Username: "alice"},
	}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"alice","password":"s3cret!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	require.NotNil(t, uc.lastRegister)
	assert.Equal(t, "s3cret!", uc.lastRegister.Password)
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	uc := &stubAuthUsecase{}
	e := newAuthTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Nil(t, uc.lastRegister, "usecase must not run on invalid input")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
