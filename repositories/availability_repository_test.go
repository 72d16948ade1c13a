// File: /repositories/availability_repository_test.go
package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerza-api/models"
)

func TestUpsertScopesUpdateToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewAvailabilityRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	slot := &models.Availability{UserID: alice.ID, DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "10:00"}
	require.NoError(t, repo.Upsert(slot))
	require.NotZero(t, slot.ID)

	stolen := &models.Availability{ID: slot.ID, UserID: bob.ID, DayOfWeek: "FRIDAY", StartTime: "12:00", EndTime: "13:00"}
	assert.ErrorIs(t, repo.Upsert(stolen), gorm.ErrRecordNotFound)

	slot.EndTime = "11:00"
	require.NoError(t, repo.Upsert(slot))

	slots, err := repo.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "11:00", slots[0].EndTime)
}

func TestOverlayMarksBookedSlots(t *testing.T) {
	db := newTestDB(t)
	repo := NewAvailabilityRepository(db)
	meetings := NewMeetingRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	morning := &models.Availability{UserID: alice.ID, DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "10:00"}
	afternoon := &models.Availability{UserID: alice.ID, DayOfWeek: "MONDAY", StartTime: "14:00", EndTime: "15:00"}
	require.NoError(t, repo.Upsert(morning))
	require.NoError(t, repo.Upsert(afternoon))

	// 2026-01-05 is a Monday; the meeting covers the morning slot only.
	start := time.Date(2026, 1, 5, 9, 15, 0, 0, time.UTC)
	end := time.Date(2026, 1, 5, 9, 45, 0, 0, time.UTC)
	meeting := &models.Meeting{HostID: bob.ID, GuestID: alice.ID, Status: models.MeetingStatusPending, StartDatetime: &start, EndDatetime: &end}
	require.NoError(t, meetings.Create(meeting))
	require.NoError(t, meetings.Accept(meeting, "room"))

	overlay, err := repo.Overlay(alice.ID)
	require.NoError(t, err)
	require.Len(t, overlay, 2)

	byID := map[uint]bool{}
	for _, status := range overlay {
		byID[status.ID] = status.IsBooked
	}
	assert.True(t, byID[morning.ID])
	assert.False(t, byID[afternoon.ID])
}

func TestOverlayIgnoresPendingMeetings(t *testing.T) {
	db := newTestDB(t)
	repo := NewAvailabilityRepository(db)
	meetings := NewMeetingRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	slot := &models.Availability{UserID: alice.ID, DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "10:00"}
	require.NoError(t, repo.Upsert(slot))

	start := time.Date(2026, 1, 5, 9, 15, 0, 0, time.UTC)
	end := time.Date(2026, 1, 5, 9, 45, 0, 0, time.UTC)
	require.NoError(t, meetings.Create(&models.Meeting{HostID: bob.ID, GuestID: alice.ID, Status: models.MeetingStatusPending, StartDatetime: &start, EndDatetime: &end}))

	overlay, err := repo.Overlay(alice.ID)
	require.NoError(t, err)
	require.Len(t, overlay, 1)
	assert.False(t, overlay[0].IsBooked)
}
