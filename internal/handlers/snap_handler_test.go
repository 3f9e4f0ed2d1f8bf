package handlers_test

import (
	"net/http"
	"testing"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapFlow_SendViewDisappear(t *testing.T) {
	e := setupServer(t)

	aliceToken, _ := login(t, e, "alice")
	bobToken, bobID := login(t, e, "bob")

	// Alice sends bob a snap with a three second reveal.
	rec := doRequest(t, e, http.MethodPost, "/api/v1/snaps", aliceToken, map[string]interface{}{
		"receiverId": bobID,
		"mediaUrl":   "media/snap-1",
		"duration":   3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sent models.Snap
	decodeJSON(t, rec, &sent)
	assert.Equal(t, 3, sent.Duration)
	assert.Equal(t, "image", sent.MediaType)

	// Bob's inbox has it.
	var inbox []models.Snap
	rec = doRequest(t, e, http.MethodGet, "/api/v1/snaps", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &inbox)
	require.Len(t, inbox, 1)
	assert.Equal(t, sent.ID, inbox[0].ID)

	// Bob views it; the inbox empties.
	rec = doRequest(t, e, http.MethodPost, "/api/v1/snaps/"+sent.ID+"/view", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/api/v1/snaps", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &inbox)
	assert.Empty(t, inbox)

	// A second view does not error and the snap stays gone.
	rec = doRequest(t, e, http.MethodPost, "/api/v1/snaps/"+sent.ID+"/view", bobToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/api/v1/snaps", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &inbox)
	assert.Empty(t, inbox)
}

func TestSnapView_UnknownSnap(t *testing.T) {
	e := setupServer(t)

	aliceToken, _ := login(t, e, "alice")

	rec := doRequest(t, e, http.MethodPost, "/api/v1/snaps/missing-id/view", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSnap_Validation(t *testing.T) {
	e := setupServer(t)

	aliceToken, _ := login(t, e, "alice")
	_, bobID := login(t, e, "bob")

	// Missing media reference.
	rec := doRequest(t, e, http.MethodPost, "/api/v1/snaps", aliceToken, map[string]interface{}{
		"receiverId": bobID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown receiver.
	rec = doRequest(t, e, http.MethodPost, "/api/v1/snaps", aliceToken, map[string]interface{}{
		"receiverId": "missing-id",
		"mediaUrl":   "media/snap-1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
