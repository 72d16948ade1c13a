// File: /repositories/message_repository_test.go
package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerza-api/models"
)

func TestConversationReturnsBothDirectionsInOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "hi"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Content: "hey"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "free tonight?"}))

	messages, err := repo.Conversation(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "hi", messages[0].Content)
	assert.Equal(t, "hey", messages[1].Content)
	assert.Equal(t, "free tonight?", messages[2].Content)
}

func TestMarkReadOnlyAffectsIncoming(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Content: "one"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Content: "two"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "three"}))

	count, err := repo.UnreadCount(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkRead(alice.ID, bob.ID))

	count, err = repo.UnreadCount(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Bob's unread copy of alice's message is untouched.
	count, err = repo.UnreadCount(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLastMessageNilWhenEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	message, err := repo.LastMessage(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, message)
}

func TestPeerIDsDeduplicatesAcrossDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Create(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "a"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Content: "b"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: carol.ID, ReceiverID: alice.ID, Content: "c"}))

	peers, err := repo.PeerIDs(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{bob.ID, carol.ID}, peers)
}
