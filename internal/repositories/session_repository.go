package repositories

import (
	"errors"
	"time"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	CreateSession(userID string, ttl time.Duration) (*models.Session, error)
	GetSessionByToken(token string) (*models.Session, error)
	DeleteSession(token string) error
}

// PostgresSessionRepository implements SessionRepository for PostgreSQL
type PostgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(db *gorm.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

// CreateSession issues a fresh opaque token for the user.
func (r *PostgresSessionRepository) CreateSession(userID string, ttl time.Duration) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionByToken resolves a token to its session. An expired session
// behaves exactly like a missing one and its row is dropped on the way.
func (r *PostgresSessionRepository) GetSessionByToken(token string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		_ = r.db.Delete(&models.Session{}, "token = ?", token).Error
		return nil, ErrNotFound
	}
	return &session, nil
}

// DeleteSession revokes a token. Deleting an unknown token is a no-op.
func (r *PostgresSessionRepository) DeleteSession(token string) error {
	return r.db.Delete(&models.Session{}, "token = ?", token).Error
}
