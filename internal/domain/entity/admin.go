// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the administrative principal of the back office. It is created
// exactly once at registration and read at every login; this core never
// updates it afterwards.
//
// PasswordDigest and PasswordSalt are always set together at creation and
// never mutated independently. The salt is unique per admin and is the
// keying material of the digest; neither is ever exposed through the API.
type Admin struct {
	ID             uuid.UUID // The unique identifier for the admin account.
	Username       string    // Login identifier; matched exactly, no case folding.
	PasswordDigest []byte    // HMAC-SHA512(key=salt, message=password), 64 bytes.
	PasswordSalt   []byte    // Random keying material generated at registration, 64 bytes.
	CreatedAt      time.Time // Timestamp of when this admin account was created.
}
