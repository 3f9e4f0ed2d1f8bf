package repositories

import (
	"github.com/glimpse-app/backend/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship data operations
type FriendshipRepository interface {
	AddFriend(userID, friendID string) (*models.Friendship, error)
	GetUserFriends(userID string) ([]models.User, error)
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// AddFriend creates a single directed edge with status accepted. Calling
// it twice creates two edges; that is harmless because friendship queries
// are membership tests over both directions, not counts.
func (r *PostgresFriendshipRepository) AddFriend(userID, friendID string) (*models.Friendship, error) {
	friendship := &models.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   models.FriendshipAccepted,
	}
	if err := r.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// GetUserFriends returns every user reachable by an accepted edge in
// either direction.
func (r *PostgresFriendshipRepository) GetUserFriends(userID string) ([]models.User, error) {
	// Edges where the user is the owner, and edges where the user is the target
	subQuery1 := r.db.Table("friendships").Select("friend_id").Where("user_id = ? AND status = ?", userID, models.FriendshipAccepted)
	subQuery2 := r.db.Table("friendships").Select("user_id").Where("friend_id = ? AND status = ?", userID, models.FriendshipAccepted)

	var friends []models.User
	if err := r.db.Where("id IN (?) OR id IN (?)", subQuery1, subQuery2).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}
