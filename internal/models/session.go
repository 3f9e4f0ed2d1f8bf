package models

import "time"

// Session maps an opaque bearer token to a logged-in user. Every request
// resolves its caller through one of these rows; there is no process-wide
// notion of a current user.
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
}
