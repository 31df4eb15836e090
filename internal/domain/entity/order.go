package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer order surfaced to operators for fulfilment tracking.
type Order struct {
	ID        uuid.UUID   // The unique identifier for the order.
	UserID    uuid.UUID   // The end-user who placed the order.
	UserEmail string      // Denormalized for listings; sourced from the users table.
	Items     []OrderItem // Line items of the order.
	Status    OrderStatus // Current fulfilment status.
	CreatedAt time.Time   // Timestamp of when the order was placed.
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID          uuid.UUID // The unique identifier for the line item.
	ProductID   uuid.UUID // The product ordered.
	ProductName string    // Denormalized for listings; sourced from the products table.
	Quantity    int       // Units ordered.
	Price       float64   // Unit price at listing time.
}
