package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Friendship statuses. Only accepted edges are ever created by this
// system; pending exists for schema compatibility.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is a directed edge between two users. An accepted edge is
// treated as mutual: friend queries match it in either direction, so a
// single row makes both users visible to each other.
type Friendship struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	FriendID  string    `json:"friendId" gorm:"index;not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// AddFriendRequest defines the request body for adding a friend.
type AddFriendRequest struct {
	FriendID string `json:"friendId" validate:"required"`
}
