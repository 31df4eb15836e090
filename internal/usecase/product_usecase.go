package usecase

import (
	"context"

	"github.com/google/uuid"

	"backoffice/internal/domain/entity"
)

// CreateProductInput carries the fields for a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateProductInput carries the replacement fields for an existing product.
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Stock       int
}

// ProductUsecase defines the interface for catalog administration.
type ProductUsecase interface {
	// ListProducts returns all products not marked as deleted.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a new product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct replaces the mutable fields of an existing product.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) error

	// DeleteProduct soft-deletes the product. Order lines keep referencing it.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
