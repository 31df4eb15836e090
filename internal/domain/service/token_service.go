package service

import (
	"github.com/golang-jwt/jwt/v5"

	"backoffice/internal/domain/entity"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	Username string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed
// identity tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given admin,
	// carrying their identifier, username and the Admin role.
	Issue(admin *entity.Admin) (string, error)

	// Validate checks signature, expiry, issuer and audience of a token
	// string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
