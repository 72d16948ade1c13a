// File: /models/meeting_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptedRoomSortsParticipants(t *testing.T) {
	a := "aaaa-1111"
	b := "bbbb-2222"

	room1 := AcceptedRoom(a, b, 7)
	room2 := AcceptedRoom(b, a, 7)

	assert.Equal(t, room1, room2, "room must not depend on who hosted")
	assert.Equal(t, "peerza-aaaa-1111-bbbb-2222-7", room1)
}

func TestAcceptedRoomDistinctPerMeeting(t *testing.T) {
	a := "aaaa-1111"
	b := "bbbb-2222"

	assert.NotEqual(t, AcceptedRoom(a, b, 7), AcceptedRoom(a, b, 8))
}

func TestCallRoomKeepsCallerOrder(t *testing.T) {
	assert.Equal(t, "Peerza-Class-u1-u2", CallRoom("u1", "u2"))
	assert.Equal(t, "Peerza-Class-u2-u1", CallRoom("u2", "u1"))
}

func TestIsParticipantAndOtherParticipant(t *testing.T) {
	m := Meeting{HostID: "host", GuestID: "guest"}

	assert.True(t, m.IsParticipant("host"))
	assert.True(t, m.IsParticipant("guest"))
	assert.False(t, m.IsParticipant("stranger"))

	assert.Equal(t, "guest", m.OtherParticipant("host"))
	assert.Equal(t, "host", m.OtherParticipant("guest"))
}
