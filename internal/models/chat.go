package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is a persistent two-party text message. Messages are append-only;
// the read flag flips monotonically false to true when the receiver views
// the thread.
type Chat struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SenderID   string    `json:"senderId" gorm:"index;not null"`
	ReceiverID string    `json:"receiverId" gorm:"index;not null"`
	Message    string    `json:"message" gorm:"not null"`
	Read       bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (ch *Chat) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	return nil
}

// CreateChatRequest defines the request body for sending a message.
type CreateChatRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// ChatPreview summarizes one conversation: the counterpart, the most
// recent message in either direction, and how many of their messages the
// caller has not read yet.
type ChatPreview struct {
	Friend      User `json:"friend"`
	LastMessage Chat `json:"lastMessage"`
	UnreadCount int  `json:"unreadCount"`
}
