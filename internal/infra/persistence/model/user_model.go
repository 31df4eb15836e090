package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Rows are soft-deleted via the
// is_deleted flag rather than removed, so orders keep a valid reference.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	IsSuspended bool      `gorm:"not null;default:false"`
	IsDeleted   bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Orders []OrderModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
