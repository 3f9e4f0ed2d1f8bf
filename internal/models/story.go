package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoryLifetime is the fixed visibility window of a story. Not configurable.
const StoryLifetime = 24 * time.Hour

// Story is a time-boxed media broadcast visible to the author's friends.
// Active while now < ExpiresAt; expired stories are filtered out of every
// read query but never deleted.
type Story struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	MediaURL  string    `json:"mediaUrl" gorm:"not null"`
	MediaType string    `json:"mediaType" gorm:"not null;default:'image'"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// StoryView records that a viewer has seen a story. At most one row exists
// per (story, viewer) pair; repeat views are ignored.
type StoryView struct {
	ID       string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoryID  string    `json:"storyId" gorm:"index;uniqueIndex:idx_story_viewer;not null"`
	ViewerID string    `json:"viewerId" gorm:"index;uniqueIndex:idx_story_viewer;not null"`
	ViewedAt time.Time `json:"viewedAt" gorm:"autoCreateTime"`
}

func (v *StoryView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// CreateStoryRequest defines the request body for publishing a story.
type CreateStoryRequest struct {
	MediaURL  string `json:"mediaUrl" validate:"required"`
	MediaType string `json:"mediaType" validate:"omitempty,oneof=image video"`
}

// StoryWithAuthor pairs an active story with its author record for the
// friends' story listing.
type StoryWithAuthor struct {
	Story
	Author User `json:"user"`
}
