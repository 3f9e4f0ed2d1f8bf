package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Snap defaults applied at creation.
const (
	SnapDefaultDuration = 5
	DefaultMediaType    = "image"
	SnapLifetime        = 24 * time.Hour
)

// Snap is a single-recipient, single-view media message. It moves through
// exactly one transition: delivered (viewed=false) to viewed (viewed=true,
// viewedAt set). Viewed snaps never reappear in the receiver's inbox, and
// unviewed snaps stop being visible once ExpiresAt passes. Rows are never
// deleted; expiry is a visibility filter.
type Snap struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SenderID   string     `json:"senderId" gorm:"index;not null"`
	ReceiverID string     `json:"receiverId" gorm:"index;not null"`
	MediaURL   string     `json:"mediaUrl" gorm:"not null"`
	MediaType  string     `json:"mediaType" gorm:"not null;default:'image'"`
	Duration   int        `json:"duration" gorm:"not null;default:5"`
	Viewed     bool       `json:"viewed" gorm:"not null;default:false"`
	ViewedAt   *time.Time `json:"viewedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  time.Time  `json:"expiresAt" gorm:"index;not null"`
}

func (s *Snap) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// CreateSnapRequest defines the request body for sending a snap. Duration
// is seconds of active viewing granted to the receiver.
type CreateSnapRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	MediaURL   string `json:"mediaUrl" validate:"required"`
	MediaType  string `json:"mediaType" validate:"omitempty,oneof=image video"`
	Duration   int    `json:"duration" validate:"omitempty,min=1,max=10"`
}
