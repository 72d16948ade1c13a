// File: /models/availability.go
package models

import (
	"strings"
	"time"
)

// Availability is a recurring weekly slot. Times are zero-padded "HH:MM"
// strings, which compare correctly as plain strings.
type Availability struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	DayOfWeek string    `json:"day_of_week" gorm:"not null;size:10"`
	StartTime string    `json:"start_time" gorm:"not null;size:5"`
	EndTime   string    `json:"end_time" gorm:"not null;size:5"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BookedBy reports whether an accepted meeting blocks this slot: same
// weekday as the meeting's start, and half-open time-of-day overlap.
// Meetings missing either timestamp never book a slot.
func (a *Availability) BookedBy(m *Meeting) bool {
	if m.StartDatetime == nil || m.EndDatetime == nil {
		return false
	}
	meetingDay := strings.ToUpper(m.StartDatetime.Weekday().String())
	if meetingDay != strings.ToUpper(a.DayOfWeek) {
		return false
	}
	meetingStart := m.StartDatetime.Format("15:04")
	meetingEnd := m.EndDatetime.Format("15:04")
	return !(meetingEnd <= a.StartTime || meetingStart >= a.EndTime)
}

// AvailabilityStatus is a slot annotated with its booked state.
type AvailabilityStatus struct {
	ID        uint   `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}
