package handlers

import (
	"errors"
	"net/http"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipRepository repositories.FriendshipRepository
	userRepository       repositories.UserRepository
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipRepo repositories.FriendshipRepository, userRepo repositories.UserRepository) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipRepository: friendshipRepo,
		userRepository:       userRepo,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.GET("/friends", h.GetFriends)
	g.POST("/friends", h.AddFriend)
}

// GetFriends returns every user connected to the caller by an accepted
// edge in either direction.
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	user := currentUser(c)

	friends, err := h.friendshipRepository.GetUserFriends(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, friends)
}

// AddFriend creates an accepted edge from the caller to the given user.
func (h *FriendshipHandler) AddFriend(c echo.Context) error {
	user := currentUser(c)

	var req models.AddFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Check the friend exists
	if _, err := h.userRepository.GetUserByID(req.FriendID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Friend user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendship, err := h.friendshipRepository.AddFriend(user.ID, req.FriendID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, friendship)
}
