// File: /repositories/meeting_repository_test.go
package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerza-api/models"
)

func TestMeetingAcceptAssignsRoom(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")

	meeting := &models.Meeting{HostID: host.ID, GuestID: guest.ID, Topic: "Go basics", Status: models.MeetingStatusPending}
	require.NoError(t, repo.Create(meeting))

	room := models.AcceptedRoom(host.ID, guest.ID, meeting.ID)
	require.NoError(t, repo.Accept(meeting, room))
	assert.Equal(t, models.MeetingStatusAccepted, meeting.Status)

	reloaded, err := repo.GetByID(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusAccepted, reloaded.Status)
	require.NotNil(t, reloaded.Room)
	assert.Equal(t, room, *reloaded.Room)
}

func TestMeetingSecondResponseLoses(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")

	meeting := &models.Meeting{HostID: host.ID, GuestID: guest.ID, Status: models.MeetingStatusPending}
	require.NoError(t, repo.Create(meeting))
	require.NoError(t, repo.Decline(meeting))

	assert.ErrorIs(t, repo.Accept(meeting, "room"), ErrAlreadyResponded)
	assert.ErrorIs(t, repo.Decline(meeting), ErrAlreadyResponded)

	reloaded, err := repo.GetByID(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusDeclined, reloaded.Status)
	assert.Nil(t, reloaded.Room)
}

func TestStartCallReusesPendingMeeting(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	caller := createTestUser(t, db, "caller")
	receiver := createTestUser(t, db, "receiver")

	first, created, err := repo.StartCall(caller.ID, receiver.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, first.StartDatetime)

	second, created, err := repo.StartCall(caller.ID, receiver.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Meeting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStartCallDirectionMatters(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	caller := createTestUser(t, db, "caller")
	receiver := createTestUser(t, db, "receiver")

	outbound, created, err := repo.StartCall(caller.ID, receiver.ID)
	require.NoError(t, err)
	require.True(t, created)

	// The reverse direction is a separate pending meeting.
	inbound, created, err := repo.StartCall(receiver.ID, caller.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, outbound.ID, inbound.ID)
}

func TestCancelBetweenEitherOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	caller := createTestUser(t, db, "caller")
	receiver := createTestUser(t, db, "receiver")

	meeting, _, err := repo.StartCall(caller.ID, receiver.ID)
	require.NoError(t, err)

	// The receiver hangs up, so the pair arrives reversed.
	endedAt := time.Now()
	cancelled, err := repo.CancelBetween(receiver.ID, caller.ID, endedAt)
	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, meeting.ID, cancelled.ID)
	assert.Equal(t, models.MeetingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.EndDatetime)
}

func TestCancelBetweenNothingPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	caller := createTestUser(t, db, "caller")
	receiver := createTestUser(t, db, "receiver")

	cancelled, err := repo.CancelBetween(caller.ID, receiver.ID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, cancelled)
}

func TestPendingInvitesOnlyForGuest(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")

	meeting := &models.Meeting{HostID: host.ID, GuestID: guest.ID, Status: models.MeetingStatusPending}
	require.NoError(t, repo.Create(meeting))

	invites, err := repo.PendingInvites(guest.ID)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "host", invites[0].Host.Username)

	invites, err = repo.PendingInvites(host.ID)
	require.NoError(t, err)
	assert.Empty(t, invites)
}

func TestAcceptedWithTimesFiltersIncomplete(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")

	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	full := &models.Meeting{HostID: host.ID, GuestID: guest.ID, Status: models.MeetingStatusAccepted, StartDatetime: &start, EndDatetime: &end}
	require.NoError(t, repo.Create(full))
	require.NoError(t, repo.Create(&models.Meeting{HostID: host.ID, GuestID: guest.ID, Status: models.MeetingStatusAccepted, StartDatetime: &start}))
	require.NoError(t, repo.Create(&models.Meeting{HostID: host.ID, GuestID: guest.ID, Status: models.MeetingStatusPending, StartDatetime: &start, EndDatetime: &end}))

	meetings, err := repo.AcceptedWithTimes(guest.ID)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, full.ID, meetings[0].ID)
}
