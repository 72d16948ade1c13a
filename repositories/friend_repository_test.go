// File: /repositories/friend_repository_test.go
package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerza-api/models"
)

func TestFriendRequestAcceptCreatesBothDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestStatusPending, request.Status)

	loaded, err := repo.GetForRecipient(request.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(loaded))
	assert.Equal(t, models.FriendRequestStatusAccepted, loaded.Status)

	aliceFriends, err := repo.FriendIDs(alice.ID)
	require.NoError(t, err)
	bobFriends, err := repo.FriendIDs(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, aliceFriends)
	assert.Equal(t, []string{alice.ID}, bobFriends)
}

func TestFriendRequestDecline(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Decline(request))
	assert.Equal(t, models.FriendRequestStatusDeclined, request.Status)

	friends, err := repo.FriendIDs(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestFriendRequestSecondResponseLoses(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(request))

	assert.ErrorIs(t, repo.Decline(request), ErrAlreadyResponded)
	assert.ErrorIs(t, repo.Accept(request), ErrAlreadyResponded)
}

func TestFriendRequestResendResetsToPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	first, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Decline(first))

	second, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "pair must stay one row")
	assert.Equal(t, models.FriendRequestStatusPending, second.Status)
}

func TestFriendRequestRepeatedAcceptKeepsOneFriendshipRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(request))

	// Decline, resend, accept again: friendships must not duplicate.
	resent, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Decline(resent))
	resent, err = repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(resent))

	var count int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetForRecipientScopesToRecipient(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	request, err := repo.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = repo.GetForRecipient(request.ID, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPendingInboxListsOnlyPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	fromAlice, err := repo.SendRequest(alice.ID, carol.ID)
	require.NoError(t, err)
	fromBob, err := repo.SendRequest(bob.ID, carol.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Decline(fromBob))

	inbox, err := repo.PendingInbox(carol.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, fromAlice.ID, inbox[0].ID)
	assert.Equal(t, "alice", inbox[0].FromUser.Username)
}
