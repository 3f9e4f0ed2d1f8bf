package handlers

import (
	"errors"
	"net/http"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatRepository repositories.ChatRepository
	userRepository repositories.UserRepository
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) *ChatHandler {
	return &ChatHandler{
		chatRepository: chatRepo,
		userRepository: userRepo,
	}
}

// RegisterChatRoutes registers chat-related routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.GET("/chats", h.GetChatPreviews)
	g.GET("/chats/:friendId", h.GetThread)
	g.POST("/chats", h.CreateChat)
}

// GetChatPreviews returns one conversation summary per counterpart.
func (h *ChatHandler) GetChatPreviews(c echo.Context) error {
	user := currentUser(c)

	previews, err := h.chatRepository.GetChatPreviews(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, previews)
}

// GetThread returns the full thread with a friend, oldest first. Serving
// the thread marks the friend's messages to the caller as read.
func (h *ChatHandler) GetThread(c echo.Context) error {
	user := currentUser(c)
	friendID := c.Param("friendId")

	chats, err := h.chatRepository.GetThread(user.ID, friendID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.chatRepository.MarkThreadRead(user.ID, friendID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, chats)
}

// CreateChat appends a message from the caller to the given receiver.
func (h *ChatHandler) CreateChat(c echo.Context) error {
	user := currentUser(c)

	var req models.CreateChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Receiver user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	chat := &models.Chat{
		SenderID:   user.ID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	}
	if err := h.chatRepository.CreateChat(chat); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, chat)
}
