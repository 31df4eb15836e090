// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The unique index on username is the authority for duplicate registration;
// the service-level existence pre-check is only a fast path.
type AdminModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username       string    `gorm:"type:varchar(100);unique;not null"`
	PasswordDigest []byte    `gorm:"type:bytea;not null"`
	PasswordSalt   []byte    `gorm:"type:bytea;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
