package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item managed by the back office.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	Name        string    // Display name of the product.
	Description string    // Free-form description.
	Price       float64   // Unit price; persisted as numeric(12,2).
	Stock       int       // Units currently in stock.
	IsDeleted   bool      // Soft-delete marker; deleted products are hidden from listings.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
