package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
	sessionTTL        time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		sessionTTL:        sessionTTL,
	}
}

// RegisterAuthRoutes registers the unprotected login route
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
}

// RegisterSessionRoutes registers routes that require a resolved session
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.Me)
}

// Login authenticates by bare username, creating the account on first
// login, and issues a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		user = &models.User{
			Username:    req.Username,
			DisplayName: req.Username,
		}
		if err := h.userRepository.CreateUser(user); err != nil {
			// A concurrent first login for the same username can win the
			// race; fall back to the row it created.
			if errors.Is(err, repositories.ErrConflict) {
				user, err = h.userRepository.GetUserByUsername(req.Username)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
				}
			} else {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
		}
	}

	session, err := h.sessionRepository.CreateSession(user.ID, h.sessionTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user, "token": session.Token})
}

// Logout revokes the presented session token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := sessionToken(c)
	if err := h.sessionRepository.DeleteSession(token); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me returns the caller resolved from the session.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"user": currentUser(c)})
}
