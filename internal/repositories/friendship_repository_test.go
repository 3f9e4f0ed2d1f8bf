package repositories_test

import (
	"testing"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/glimpse-app/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendshipRepository_SingleEdgeIsBidirectional(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	alice := testutil.CreateTestUser(t, db, "alice")
	bob := testutil.CreateTestUser(t, db, "bob")

	friendship, err := repo.AddFriend(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipAccepted, friendship.Status)

	// One directed edge makes both users visible to each other.
	aliceFriends, err := repo.GetUserFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := repo.GetUserFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)
}

func TestFriendshipRepository_DuplicateEdgesAreHarmless(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	alice := testutil.CreateTestUser(t, db, "alice")
	bob := testutil.CreateTestUser(t, db, "bob")

	_, err := repo.AddFriend(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.AddFriend(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.AddFriend(bob.ID, alice.ID)
	require.NoError(t, err)

	// Membership is a set test, not a count: bob appears once.
	friends, err := repo.GetUserFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)
}

func TestFriendshipRepository_NoFriends(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	alice := testutil.CreateTestUser(t, db, "alice")

	friends, err := repo.GetUserFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestFriendshipRepository_PendingEdgesInvisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	alice := testutil.CreateTestUser(t, db, "alice")
	bob := testutil.CreateTestUser(t, db, "bob")

	pending := &models.Friendship{UserID: alice.ID, FriendID: bob.ID, Status: models.FriendshipPending}
	require.NoError(t, db.Create(pending).Error)

	friends, err := repo.GetUserFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}
