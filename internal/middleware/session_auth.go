package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SessionAuthMiddleware resolves the bearer token to a session and its
// user, and stores both in the request context. Every request carries its
// own caller identity; nothing is shared between requests.
func SessionAuthMiddleware(sessionRepo repositories.SessionRepository, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			token := parts[1]

			session, err := sessionRepo.GetSessionByToken(token)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			user, err := userRepo.GetUserByID(session.UserID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Session user no longer exists")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			c.Set("currentUser", user)
			c.Set("sessionToken", token)

			return next(c)
		}
	}
}
