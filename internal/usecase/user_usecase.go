package usecase

import (
	"context"

	"github.com/google/uuid"

	"backoffice/internal/domain/entity"
)

// SuspendUserInput toggles the suspension flag of a managed user.
type SuspendUserInput struct {
	ID        uuid.UUID
	Suspended bool
}

// UserUsecase defines the interface for managed-user administration.
type UserUsecase interface {
	// ListUsers returns all users not marked as deleted.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SuspendUser sets or clears the suspension flag.
	SuspendUser(ctx context.Context, input *SuspendUserInput) error

	// DeleteUser soft-deletes the user. The row is retained for order history.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
