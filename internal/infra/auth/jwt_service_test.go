package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
	"backoffice/internal/domain/entity"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-signing"
	cfg.JWT.Issuer = "backoffice"
	cfg.JWT.Audience = "backoffice-admin"

	return cfg
}

func testAdmin() *entity.Admin {
	return &entity.Admin{
		ID:       uuid.New(),
		Username: "alice",
	}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.Secret = ""

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	admin := testAdmin()

	tokenString, err := svc.Issue(admin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)

	assert.Equal(t, admin.ID.String(), claims.Subject)
	assert.Equal(t, admin.Username, claims.Username)
	assert.Equal(t, entity.RoleAdmin.String(), claims.Role)
	assert.Equal(t, "backoffice", claims.Issuer)
}

func TestJWTService_Issue_ExpiryIs24Hours(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	tokenString, err := svc.Issue(testAdmin())
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_Validate_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	tokenString, err := svc.Issue(testAdmin())
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = svc.Validate(tampered)
	assert.Error(t, err)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	tokenString, err := svc.Issue(testAdmin())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.Secret = "a-different-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = otherSvc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Forge an already-expired token signed with the right secret.
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"name": "alice",
		"role": entity.RoleAdmin.String(),
		"iss":  cfg.JWT.Issuer,
		"aud":  cfg.JWT.Audience,
		"iat":  now.Add(-25 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = svc.Validate(expired)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsUnsignedToken(t *testing.T) {
	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": cfg.JWT.Issuer,
		"aud": cfg.JWT.Audience,
		"exp": now.Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.Error(t, err)
}
