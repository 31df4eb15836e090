package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// Soft-deleted products are invisible to every method here.
type ProductRepository interface {
	// FindAll retrieves all non-deleted products.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single non-deleted product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product and assigns its generated identifier.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing non-deleted product.
	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete marks a product as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
