package repositories

import (
	"errors"
	"time"

	"github.com/glimpse-app/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	CreateStory(story *models.Story) error
	GetUserStories(userID string) ([]models.Story, error)
	GetStoriesByUserIDs(userIDs []string) ([]models.Story, error)
	RecordView(storyID, viewerID string) error
	GetStoryViews(storyID string) ([]models.StoryView, error)
}

// PostgresStoryRepository implements StoryRepository for PostgreSQL
type PostgresStoryRepository struct {
	db *gorm.DB
}

// NewPostgresStoryRepository creates a new PostgresStoryRepository
func NewPostgresStoryRepository(db *gorm.DB) *PostgresStoryRepository {
	return &PostgresStoryRepository{db: db}
}

// CreateStory stores a new story with the fixed 24h visibility window.
func (r *PostgresStoryRepository) CreateStory(story *models.Story) error {
	if story.MediaType == "" {
		story.MediaType = models.DefaultMediaType
	}
	now := time.Now()
	story.CreatedAt = now
	story.ExpiresAt = now.Add(models.StoryLifetime)
	return r.db.Create(story).Error
}

// GetUserStories returns the author's active stories, newest first. A
// story is excluded from the exact expiry instant onward.
func (r *PostgresStoryRepository) GetUserStories(userID string) ([]models.Story, error) {
	var stories []models.Story
	err := r.db.
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// GetStoriesByUserIDs returns active stories authored by any of the given
// users, newest first.
func (r *PostgresStoryRepository) GetStoriesByUserIDs(userIDs []string) ([]models.Story, error) {
	if len(userIDs) == 0 {
		return []models.Story{}, nil
	}
	var stories []models.Story
	err := r.db.
		Where("user_id IN ? AND expires_at > ?", userIDs, time.Now()).
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// RecordView inserts a view row for (storyID, viewerID). Recording a
// repeat view is a no-op, never an error; the unique index on the pair
// plus ON CONFLICT DO NOTHING keeps at most one row per viewer.
func (r *PostgresStoryRepository) RecordView(storyID, viewerID string) error {
	var story models.Story
	if err := r.db.First(&story, "id = ?", storyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	view := &models.StoryView{
		StoryID:  storyID,
		ViewerID: viewerID,
		ViewedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(view).Error
}

// GetStoryViews returns all view rows recorded for a story.
func (r *PostgresStoryRepository) GetStoryViews(storyID string) ([]models.StoryView, error) {
	var views []models.StoryView
	if err := r.db.Where("story_id = ?", storyID).Find(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}
