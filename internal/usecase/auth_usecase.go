// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// LoginInput defines the credential pair submitted for login. It is
// transient: never persisted, never logged, discarded after verification.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to register a new admin.
type RegisterInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed token and the authenticated username.
type AuthOutput struct {
	Token    string
	Username string
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies the submitted credentials and issues a signed token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Register creates a new admin and issues a token immediately, granting
	// an authenticated session without a separate login step.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
}
