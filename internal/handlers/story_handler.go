package handlers

import (
	"errors"
	"net/http"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyRepository      repositories.StoryRepository
	friendshipRepository repositories.FriendshipRepository
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository, friendshipRepo repositories.FriendshipRepository) *StoryHandler {
	return &StoryHandler{
		storyRepository:      storyRepo,
		friendshipRepository: friendshipRepo,
	}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.GET("/stories", h.GetFriendsStories)
	g.GET("/stories/me", h.GetOwnStories)
	g.POST("/stories", h.CreateStory)
	g.POST("/stories/:id/view", h.RecordView)
}

// GetFriendsStories returns active stories authored by any of the
// caller's friends, newest first, each paired with its author record.
// Grouping into a per-author tray is the client's concern.
func (h *StoryHandler) GetFriendsStories(c echo.Context) error {
	user := currentUser(c)

	friends, err := h.friendshipRepository.GetUserFriends(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendIDs := make([]string, len(friends))
	friendsByID := make(map[string]models.User, len(friends))
	for i, f := range friends {
		friendIDs[i] = f.ID
		friendsByID[f.ID] = f
	}

	stories, err := h.storyRepository.GetStoriesByUserIDs(friendIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]models.StoryWithAuthor, len(stories))
	for i, s := range stories {
		result[i] = models.StoryWithAuthor{Story: s, Author: friendsByID[s.UserID]}
	}
	return c.JSON(http.StatusOK, result)
}

// GetOwnStories returns the caller's active stories, newest first.
func (h *StoryHandler) GetOwnStories(c echo.Context) error {
	user := currentUser(c)

	stories, err := h.storyRepository.GetUserStories(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stories)
}

// CreateStory publishes a story with the fixed 24h window.
func (h *StoryHandler) CreateStory(c echo.Context) error {
	user := currentUser(c)

	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	story := &models.Story{
		UserID:    user.ID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
	}
	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, story)
}

// RecordView records that the caller has seen a story. Repeat views are
// reported as success without creating another row.
func (h *StoryHandler) RecordView(c echo.Context) error {
	user := currentUser(c)
	storyID := c.Param("id")

	if err := h.storyRepository.RecordView(storyID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
