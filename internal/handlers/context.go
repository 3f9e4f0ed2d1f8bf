package handlers

import (
	"github.com/glimpse-app/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// currentUser returns the caller resolved by the session middleware, or
// nil on routes served without it.
func currentUser(c echo.Context) *models.User {
	user, ok := c.Get("currentUser").(*models.User)
	if !ok {
		return nil
	}
	return user
}

// sessionToken returns the bearer token the session middleware accepted.
func sessionToken(c echo.Context) string {
	token, ok := c.Get("sessionToken").(string)
	if !ok {
		return ""
	}
	return token
}
