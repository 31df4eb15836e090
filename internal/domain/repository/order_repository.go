package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are never deleted through the back office; only their status moves.
type OrderRepository interface {
	// FindAll retrieves all orders with their items and denormalized
	// user email / product names.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves a single order with its items by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the fulfilment status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
