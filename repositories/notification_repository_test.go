// File: /repositories/notification_repository_test.go
package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerza-api/models"
)

func TestUnreadFeedIsCapped(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for i := 0; i < UnreadFeedLimit+10; i++ {
		require.NoError(t, repo.Notify(alice.ID, &bob.ID, models.NotificationTypeFriendRequest,
			models.JSONMap{"n": fmt.Sprintf("%d", i)}))
	}

	feed, err := repo.UnreadForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, UnreadFeedLimit)

	// Newest first: the last insert leads the feed.
	assert.Equal(t, fmt.Sprintf("%d", UnreadFeedLimit+9), feed[0].Data["n"])
	require.NotNil(t, feed[0].Actor)
	assert.Equal(t, "bob", feed[0].Actor.Username)
}

func TestMarkReadScopedToRecipient(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Notify(alice.ID, nil, models.NotificationTypeMeetingRequest, models.JSONMap{"meeting_id": 1}))
	feed, err := repo.UnreadForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	assert.ErrorIs(t, repo.MarkRead(feed[0].ID, bob.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.MarkRead(feed[0].ID, alice.ID))

	feed, err = repo.UnreadForUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestDeleteReadBeforeKeepsUnread(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	alice := createTestUser(t, db, "alice")

	require.NoError(t, repo.Notify(alice.ID, nil, models.NotificationTypeFriendRequest, nil))
	require.NoError(t, repo.Notify(alice.ID, nil, models.NotificationTypeFriendAccepted, nil))

	feed, err := repo.UnreadForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.NoError(t, repo.MarkRead(feed[0].ID, alice.ID))

	// Backdate both rows past the cutoff; only the read one goes.
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", alice.ID).
		Update("created_at", old).Error)

	pruned, err := repo.DeleteReadBefore(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	var remaining int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

func TestMarkAllRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	alice := createTestUser(t, db, "alice")

	require.NoError(t, repo.Notify(alice.ID, nil, models.NotificationTypeFriendAccepted, nil))
	require.NoError(t, repo.Notify(alice.ID, nil, models.NotificationTypeMeetingResponse, nil))
	require.NoError(t, repo.MarkAllRead(alice.ID))

	feed, err := repo.UnreadForUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)

	count, err := repo.CountByType(alice.ID, models.NotificationTypeFriendAccepted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
