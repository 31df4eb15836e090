// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
// Callers must not surface it directly: the authentication service folds it
// into a generic invalid-credentials outcome so usernames cannot be enumerated.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the credential-store operations the authentication
// core consumes. Username matching is exact; no case folding is applied.
type AdminRepository interface {
	// FindByUsername retrieves a single admin by their exact username.
	// Returns ErrAdminNotFound when absent; any other error is a store failure.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// ExistsByUsername reports whether an admin with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new admin and assigns its generated identifier.
	// A concurrent insert of the same username surfaces as the domain
	// username-taken error, backed by the store's uniqueness constraint.
	Create(ctx context.Context, admin *entity.Admin) error
}
