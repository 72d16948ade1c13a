// File: /models/meeting.go
package models

import (
	"fmt"
	"time"
)

type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "PENDING"
	MeetingStatusAccepted  MeetingStatus = "ACCEPTED"
	MeetingStatusDeclined  MeetingStatus = "DECLINED"
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
)

type Meeting struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	HostID         string        `json:"host_id" gorm:"not null;size:191;index"`
	GuestID        string        `json:"guest_id" gorm:"not null;size:191;index"`
	AvailabilityID *uint         `json:"availability_id"`
	Topic          string        `json:"topic" gorm:"size:255"`
	StartDatetime  *time.Time    `json:"start_datetime"`
	EndDatetime    *time.Time    `json:"end_datetime"`
	Status         MeetingStatus `json:"status" gorm:"not null;default:'PENDING';size:20"`
	Room           *string       `json:"room" gorm:"size:500"`
	CreatedAt      time.Time     `json:"created_at"`

	Host  User `json:"-" gorm:"foreignKey:HostID"`
	Guest User `json:"-" gorm:"foreignKey:GuestID"`
}

// IsParticipant reports whether userID is the host or the guest.
func (m *Meeting) IsParticipant(userID string) bool {
	return m.HostID == userID || m.GuestID == userID
}

// OtherParticipant returns the counterpart of userID in the meeting.
func (m *Meeting) OtherParticipant(userID string) string {
	if m.HostID == userID {
		return m.GuestID
	}
	return m.HostID
}

// AcceptedRoom derives the room identifier assigned when a meeting is
// accepted. Sorting the participant pair makes the value independent of
// which participant computes it; the meeting id keeps distinct meetings
// between the same pair from colliding.
func AcceptedRoom(hostID, guestID string, meetingID uint) string {
	lo, hi := hostID, guestID
	if lo > hi {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("peerza-%s-%s-%d", lo, hi, meetingID)
}

// CallRoom derives the room label for ad-hoc calls. It depends only on
// the ordered (caller, receiver) pair, so repeated calls between the
// same pair land in the same room.
func CallRoom(callerID, receiverID string) string {
	return fmt.Sprintf("Peerza-Class-%s-%s", callerID, receiverID)
}

// MeetingResponse is the API shape with both participants embedded.
type MeetingResponse struct {
	ID             uint          `json:"id"`
	Host           PublicUser    `json:"host"`
	Guest          PublicUser    `json:"guest"`
	AvailabilityID *uint         `json:"availability_id"`
	Topic          string        `json:"topic"`
	StartDatetime  *time.Time    `json:"start_datetime"`
	EndDatetime    *time.Time    `json:"end_datetime"`
	Status         MeetingStatus `json:"status"`
	Room           *string       `json:"room"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (m *Meeting) ToResponse() MeetingResponse {
	return MeetingResponse{
		ID:             m.ID,
		Host:           m.Host.Public(),
		Guest:          m.Guest.Public(),
		AvailabilityID: m.AvailabilityID,
		Topic:          m.Topic,
		StartDatetime:  m.StartDatetime,
		EndDatetime:    m.EndDatetime,
		Status:         m.Status,
		Room:           m.Room,
		CreatedAt:      m.CreatedAt,
	}
}
