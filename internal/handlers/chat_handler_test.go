package handlers_test

import (
	"net/http"
	"testing"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatFlow_ThreadAndReadReceipts(t *testing.T) {
	e := setupServer(t)

	aliceToken, aliceID := login(t, e, "alice")
	bobToken, bobID := login(t, e, "bob")

	for _, message := range []string{"hey", "you there?"} {
		rec := doRequest(t, e, http.MethodPost, "/api/v1/chats", aliceToken, map[string]string{
			"receiverId": bobID,
			"message":    message,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// Bob's preview shows two unread from alice.
	var previews []models.ChatPreview
	rec := doRequest(t, e, http.MethodGet, "/api/v1/chats", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &previews)
	require.Len(t, previews, 1)
	assert.Equal(t, aliceID, previews[0].Friend.ID)
	assert.Equal(t, 2, previews[0].UnreadCount)

	// Viewing the thread returns it chronologically and marks it read.
	var thread []models.Chat
	rec = doRequest(t, e, http.MethodGet, "/api/v1/chats/"+aliceID, bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &thread)
	require.Len(t, thread, 2)
	assert.Equal(t, "hey", thread[0].Message)
	assert.Equal(t, "you there?", thread[1].Message)

	rec = doRequest(t, e, http.MethodGet, "/api/v1/chats", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &previews)
	require.Len(t, previews, 1)
	assert.Equal(t, 0, previews[0].UnreadCount)

	// Alice's own unread count was never affected.
	rec = doRequest(t, e, http.MethodGet, "/api/v1/chats", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &previews)
	require.Len(t, previews, 1)
	assert.Equal(t, 0, previews[0].UnreadCount)
}

func TestCreateChat_Validation(t *testing.T) {
	e := setupServer(t)

	aliceToken, _ := login(t, e, "alice")
	_, bobID := login(t, e, "bob")

	// Empty message.
	rec := doRequest(t, e, http.MethodPost, "/api/v1/chats", aliceToken, map[string]string{
		"receiverId": bobID,
		"message":    "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown receiver.
	rec = doRequest(t, e, http.MethodPost, "/api/v1/chats", aliceToken, map[string]string{
		"receiverId": "missing-id",
		"message":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
