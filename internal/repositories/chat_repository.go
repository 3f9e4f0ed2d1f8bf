package repositories

import (
	"github.com/glimpse-app/backend/internal/models"
	"gorm.io/gorm"
)

// ChatRepository defines the interface for chat data operations
type ChatRepository interface {
	CreateChat(chat *models.Chat) error
	GetThread(userID, friendID string) ([]models.Chat, error)
	MarkThreadRead(userID, friendID string) error
	GetChatPreviews(userID string) ([]models.ChatPreview, error)
}

// PostgresChatRepository implements ChatRepository for PostgreSQL
type PostgresChatRepository struct {
	db *gorm.DB
}

// NewPostgresChatRepository creates a new PostgresChatRepository
func NewPostgresChatRepository(db *gorm.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

// CreateChat appends a message to the pair's thread.
func (r *PostgresChatRepository) CreateChat(chat *models.Chat) error {
	return r.db.Create(chat).Error
}

// GetThread returns every message between the pair in either direction,
// oldest first. The result is identical whichever participant asks.
func (r *PostgresChatRepository) GetThread(userID, friendID string) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, friendID, friendID, userID).
		Order("created_at ASC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// MarkThreadRead flips the read flag on every unread message the friend
// has sent to the user. Bulk operation; read receipts are a side effect
// of viewing the thread, not a separate user action.
func (r *PostgresChatRepository) MarkThreadRead(userID, friendID string) error {
	return r.db.Model(&models.Chat{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", friendID, userID, false).
		Update("read", true).Error
}

// GetChatPreviews returns one entry per counterpart who has ever exchanged
// a message with the user: the most recent message across both directions
// plus the count of messages from that counterpart the user has not read.
// Entries come out ordered by recency of their last message.
func (r *PostgresChatRepository) GetChatPreviews(userID string) ([]models.ChatPreview, error) {
	var chats []models.Chat
	err := r.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}

	type aggregate struct {
		lastMessage models.Chat
		unreadCount int
	}
	byFriend := make(map[string]*aggregate)
	order := make([]string, 0)

	for _, chat := range chats {
		friendID := chat.ReceiverID
		if chat.ReceiverID == userID {
			friendID = chat.SenderID
		}
		agg, ok := byFriend[friendID]
		if !ok {
			// Chats are scanned newest first, so the first message seen
			// per counterpart is their last message.
			agg = &aggregate{lastMessage: chat}
			byFriend[friendID] = agg
			order = append(order, friendID)
		}
		if chat.ReceiverID == userID && !chat.Read {
			agg.unreadCount++
		}
	}

	if len(order) == 0 {
		return []models.ChatPreview{}, nil
	}

	var friends []models.User
	if err := r.db.Where("id IN ?", order).Find(&friends).Error; err != nil {
		return nil, err
	}
	friendsByID := make(map[string]models.User, len(friends))
	for _, f := range friends {
		friendsByID[f.ID] = f
	}

	previews := make([]models.ChatPreview, 0, len(order))
	for _, friendID := range order {
		friend, ok := friendsByID[friendID]
		if !ok {
			continue
		}
		agg := byFriend[friendID]
		previews = append(previews, models.ChatPreview{
			Friend:      friend,
			LastMessage: agg.lastMessage,
			UnreadCount: agg.unreadCount,
		})
	}
	return previews, nil
}
