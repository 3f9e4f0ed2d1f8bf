package handlers

import (
	"errors"
	"net/http"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SnapHandler handles snap-related HTTP requests
type SnapHandler struct {
	snapRepository repositories.SnapRepository
	userRepository repositories.UserRepository
}

// NewSnapHandler creates a new SnapHandler
func NewSnapHandler(snapRepo repositories.SnapRepository, userRepo repositories.UserRepository) *SnapHandler {
	return &SnapHandler{
		snapRepository: snapRepo,
		userRepository: userRepo,
	}
}

// RegisterSnapRoutes registers snap-related routes
func (h *SnapHandler) RegisterSnapRoutes(g *echo.Group) {
	g.GET("/snaps", h.GetPendingSnaps)
	g.POST("/snaps", h.CreateSnap)
	g.POST("/snaps/:id/view", h.MarkViewed)
}

// GetPendingSnaps returns the caller's inbox of unviewed, unexpired snaps.
func (h *SnapHandler) GetPendingSnaps(c echo.Context) error {
	user := currentUser(c)

	snaps, err := h.snapRepository.GetPendingSnaps(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, snaps)
}

// CreateSnap sends a snap from the caller to the given receiver.
func (h *SnapHandler) CreateSnap(c echo.Context) error {
	user := currentUser(c)

	var req models.CreateSnapRequest
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

	snap := &models.Snap{
		SenderID:   user.ID,
		ReceiverID: req.ReceiverID,
		MediaURL:   req.MediaURL,
		MediaType:  req.MediaType,
		Duration:   req.Duration,
	}
	if err := h.snapRepository.CreateSnap(snap); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, snap)
}

// MarkViewed consumes the snap's single view. Viewing an already-viewed
// snap is reported as success so the client-side dismiss stays idempotent.
func (h *SnapHandler) MarkViewed(c echo.Context) error {
	snapID := c.Param("id")

	if err := h.snapRepository.MarkViewed(snapID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Snap not found")
		}
		if !errors.Is(err, repositories.ErrAlreadyViewed) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
