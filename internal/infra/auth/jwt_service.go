// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// tokenTTL is the fixed lifetime of issued tokens. Validity is purely
// computed from signature and expiry; nothing is stored server-side.
const tokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte // Symmetric signing key, shared with token verifiers.
	issuer   string // Value of the iss claim.
	audience string // Value of the aud claim.
}

// NewJWTService is the constructor for jwtService.
// An empty signing secret is a configuration error: the constructor fails and
// fx aborts startup, so the service can never issue unsigned or weak tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
	}, nil
}

// Issue creates a signed HS256 token for the given admin. Claims carry the
// admin's identifier as subject, their username, and the Admin role; the
// token expires exactly 24 hours after issuance.
func (s *jwtService) Issue(admin *entity.Admin) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username: admin.Username,
		Role:     entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the validity of a token string: HMAC signing method,
// signature, expiry, issuer and audience all have to hold.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any token whose header announces a different algorithm family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
