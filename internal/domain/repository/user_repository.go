package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for end-user persistence.
// Soft-deleted users are invisible to every method here.
type UserRepository interface {
	// FindAll retrieves all non-deleted users.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single non-deleted user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SetSuspended toggles the suspension flag of a user.
	SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) error

	// SoftDelete marks a user as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
