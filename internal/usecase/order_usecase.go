package usecase

import (
	"context"

	"github.com/google/uuid"

	"backoffice/internal/domain/entity"
)

// UpdateOrderStatusInput moves an order to a new fulfilment status.
type UpdateOrderStatusInput struct {
	ID     uuid.UUID
	Status entity.OrderStatus
}

// OrderUsecase defines the interface for order administration.
type OrderUsecase interface {
	// ListOrders returns all orders with their lines.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder returns a single order by ID.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus validates and applies a status transition.
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) error
}
