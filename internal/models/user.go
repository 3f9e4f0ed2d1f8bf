package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account. Identity is immutable once created; accounts
// are created on first login with a given username.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"displayName" gorm:"not null"`
	AvatarURL   *string   `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BeforeCreate assigns an opaque UUID primary key, mirroring the
// gen_random_uuid() column default of the reference schema.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// LoginRequest defines the request body for username-only login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}
