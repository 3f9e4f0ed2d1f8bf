package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glimpse-app/backend/internal/router"
	"github.com/glimpse-app/backend/internal/testutil"
	"github.com/glimpse-app/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupServer wires the full route table over an in-memory database.
func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	db := testutil.SetupTestDB(t)
	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e, zap.NewNop())
	require.NoError(t, router.SetupRoutes(e, db, time.Hour, zap.NewNop()))
	return e
}

// doRequest performs a request against the server and returns the recorder.
// A non-empty token goes out as a bearer Authorization header.
func doRequest(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals the response body into out.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type loginResponse struct {
	User struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	Token string `json:"token"`
}

// login logs a user in (creating the account on first use) and returns
// the session token and user id.
func login(t *testing.T, e *echo.Echo, username string) (token, userID string) {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": username})
	require.Equal(t, http.StatusOK, rec.Code, "login %s: %s", username, rec.Body.String())

	var resp loginResponse
	decodeJSON(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.User.ID)
	return resp.Token, resp.User.ID
}

// befriend adds friendID to the caller's friend list through the API.
func befriend(t *testing.T, e *echo.Echo, token, friendID string) {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/v1/friends", token, map[string]string{"friendId": friendID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
