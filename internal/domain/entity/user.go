package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an end-user account managed by the back office. It is a managed
// entity only; it never authenticates against this service.
type User struct {
	ID          uuid.UUID // The unique identifier for the user.
	Email       string    // The user's contact email.
	IsSuspended bool      // Suspended users keep their data but lose access.
	IsDeleted   bool      // Soft-delete marker; deleted users are hidden from listings.
	CreatedAt   time.Time // Timestamp of when this user account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}
