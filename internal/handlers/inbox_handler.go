package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// InboxHandler assembles the combined conversation list from the snap and
// chat engines. The engines know nothing about each other; this is pure
// aggregation over their independent list operations.
type InboxHandler struct {
	snapRepository repositories.SnapRepository
	chatRepository repositories.ChatRepository
	userRepository repositories.UserRepository
}

// NewInboxHandler creates a new InboxHandler
func NewInboxHandler(
	snapRepo repositories.SnapRepository,
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
) *InboxHandler {
	return &InboxHandler{
		snapRepository: snapRepo,
		chatRepository: chatRepo,
		userRepository: userRepo,
	}
}

// RegisterInboxRoutes registers the combined inbox route
func (h *InboxHandler) RegisterInboxRoutes(g *echo.Group) {
	g.GET("/inbox", h.GetInbox)
}

// InboxEntry is one row of the combined inbox. Type is "snap" or "chat".
// A snap entry carries every pending snap from one sender; a chat entry
// carries that counterpart's conversation preview. A counterpart never
// produces both: pending snaps pre-empt the chat row.
type InboxEntry struct {
	Type        string        `json:"type"`
	Friend      models.User   `json:"friend"`
	Snaps       []models.Snap `json:"snaps,omitempty"`
	LastMessage *models.Chat  `json:"lastMessage,omitempty"`
	UnreadCount int           `json:"unreadCount"`
	Time        time.Time     `json:"time"`
}

// GetInbox merges pending snaps (grouped by sender, timestamped by the
// newest snap) with chat previews and sorts the result newest first.
func (h *InboxHandler) GetInbox(c echo.Context) error {
	user := currentUser(c)

	snaps, err := h.snapRepository.GetPendingSnaps(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	previews, err := h.chatRepository.GetChatPreviews(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Group pending snaps by sender. Snaps arrive newest first, so the
	// first snap per sender carries the entry timestamp.
	snapsBySender := make(map[string][]models.Snap)
	senderOrder := make([]string, 0)
	for _, snap := range snaps {
		if _, ok := snapsBySender[snap.SenderID]; !ok {
			senderOrder = append(senderOrder, snap.SenderID)
		}
		snapsBySender[snap.SenderID] = append(snapsBySender[snap.SenderID], snap)
	}

	senders, err := h.userRepository.GetUsersByIDs(senderOrder)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sendersByID := make(map[string]models.User, len(senders))
	for _, sender := range senders {
		sendersByID[sender.ID] = sender
	}

	entries := make([]InboxEntry, 0, len(senderOrder)+len(previews))
	for _, senderID := range senderOrder {
		sender, ok := sendersByID[senderID]
		if !ok {
			// Sender row no longer exists; nothing to show for the group.
			continue
		}
		senderSnaps := snapsBySender[senderID]
		entries = append(entries, InboxEntry{
			Type:   "snap",
			Friend: sender,
			Snaps:  senderSnaps,
			Time:   senderSnaps[0].CreatedAt,
		})
	}

	for _, preview := range previews {
		// A pending snap from this counterpart suppresses their chat row.
		if _, ok := snapsBySender[preview.Friend.ID]; ok {
			continue
		}
		lastMessage := preview.LastMessage
		entries = append(entries, InboxEntry{
			Type:        "chat",
			Friend:      preview.Friend,
			LastMessage: &lastMessage,
			UnreadCount: preview.UnreadCount,
			Time:        preview.LastMessage.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})

	return c.JSON(http.StatusOK, entries)
}
