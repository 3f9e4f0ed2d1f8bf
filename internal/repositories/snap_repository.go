package repositories

import (
	"errors"
	"time"

	"github.com/glimpse-app/backend/internal/models"
	"gorm.io/gorm"
)

// SnapRepository defines the interface for snap data operations
type SnapRepository interface {
	CreateSnap(snap *models.Snap) error
	GetPendingSnaps(userID string) ([]models.Snap, error)
	MarkViewed(snapID string) error
}

// PostgresSnapRepository implements SnapRepository for PostgreSQL
type PostgresSnapRepository struct {
	db *gorm.DB
}

// NewPostgresSnapRepository creates a new PostgresSnapRepository
func NewPostgresSnapRepository(db *gorm.DB) *PostgresSnapRepository {
	return &PostgresSnapRepository{db: db}
}

// CreateSnap stores a new snap. The expiry window is fixed at creation;
// an unviewed snap stops being visible once it passes.
func (r *PostgresSnapRepository) CreateSnap(snap *models.Snap) error {
	if snap.MediaType == "" {
		snap.MediaType = models.DefaultMediaType
	}
	if snap.Duration == 0 {
		snap.Duration = models.SnapDefaultDuration
	}
	now := time.Now()
	snap.CreatedAt = now
	snap.ExpiresAt = now.Add(models.SnapLifetime)
	return r.db.Create(snap).Error
}

// GetPendingSnaps returns the receiver's inbox: every unviewed, unexpired
// snap addressed to them, newest first. Viewed snaps never reappear here.
func (r *PostgresSnapRepository) GetPendingSnaps(userID string) ([]models.Snap, error) {
	var snaps []models.Snap
	err := r.db.
		Where("receiver_id = ? AND viewed = ? AND expires_at > ?", userID, false, time.Now()).
		Order("created_at DESC").
		Find(&snaps).Error
	if err != nil {
		return nil, err
	}
	return snaps, nil
}

// MarkViewed consumes the snap's single view. The transition is one-way:
// a second call returns ErrAlreadyViewed and leaves viewed_at untouched.
// A missing snap returns ErrNotFound.
func (r *PostgresSnapRepository) MarkViewed(snapID string) error {
	now := time.Now()
	res := r.db.Model(&models.Snap{}).
		Where("id = ? AND viewed = ?", snapID, false).
		Updates(map[string]interface{}{"viewed": true, "viewed_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Guarded update matched nothing: either the snap is gone or the view
	// was already consumed.
	var snap models.Snap
	if err := r.db.First(&snap, "id = ?", snapID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return ErrAlreadyViewed
}
