// File: /repositories/meeting_repository.go
package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"peerza-api/models"
)

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

func (r *MeetingRepository) GetByID(id uint) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.Preload("Host").Preload("Guest").First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// StartCall reuses the newest PENDING meeting for exactly (host=caller,
// guest=receiver), or creates one stamped with the current time. It
// reports whether a new meeting was created so the caller can notify
// only on creation.
func (r *MeetingRepository) StartCall(callerID, receiverID string) (*models.Meeting, bool, error) {
	var meeting models.Meeting
	err := r.db.
		Where("host_id = ? AND guest_id = ? AND status = ?",
			callerID, receiverID, models.MeetingStatusPending).
		Order("created_at desc, id desc").
		First(&meeting).Error
	if err == nil {
		return &meeting, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	now := time.Now()
	meeting = models.Meeting{
		HostID:        callerID,
		GuestID:       receiverID,
		Status:        models.MeetingStatusPending,
		StartDatetime: &now,
	}
	if err := r.db.Create(&meeting).Error; err != nil {
		return nil, false, err
	}
	return &meeting, true, nil
}

// Accept transitions PENDING -> ACCEPTED and assigns the room. The
// update is conditional on the row still being PENDING; a lost race
// returns ErrAlreadyResponded instead of clobbering a final status.
func (r *MeetingRepository) Accept(meeting *models.Meeting, room string) error {
	result := r.db.Model(&models.Meeting{}).
		Where("id = ? AND status = ?", meeting.ID, models.MeetingStatusPending).
		Updates(map[string]interface{}{
			"status": models.MeetingStatusAccepted,
			"room":   room,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyResponded
	}
	meeting.Status = models.MeetingStatusAccepted
	meeting.Room = &room
	return nil
}

// Decline transitions PENDING -> DECLINED, guarded the same way.
func (r *MeetingRepository) Decline(meeting *models.Meeting) error {
	result := r.db.Model(&models.Meeting{}).
		Where("id = ? AND status = ?", meeting.ID, models.MeetingStatusPending).
		Update("status", models.MeetingStatusDeclined)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyResponded
	}
	meeting.Status = models.MeetingStatusDeclined
	return nil
}

// CancelBetween cancels the PENDING meeting whose pair matches
// {userID, peerID} in either order and stamps its end time. Returns
// (nil, nil) when there is nothing to cancel; ending a call that no
// longer exists is not an error.
func (r *MeetingRepository) CancelBetween(userID, peerID string, endedAt time.Time) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.
		Where("host_id IN ? AND guest_id IN ? AND status = ?",
			[]string{userID, peerID}, []string{userID, peerID}, models.MeetingStatusPending).
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	result := r.db.Model(&models.Meeting{}).
		Where("id = ? AND status = ?", meeting.ID, models.MeetingStatusPending).
		Updates(map[string]interface{}{
			"status":       models.MeetingStatusCancelled,
			"end_datetime": endedAt,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Raced with a response; same outcome as no pending meeting.
		return nil, nil
	}
	meeting.Status = models.MeetingStatusCancelled
	meeting.EndDatetime = &endedAt
	return &meeting, nil
}

// ForUser returns every meeting where the user is host or guest.
func (r *MeetingRepository) ForUser(userID string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.Preload("Host").Preload("Guest").
		Where("host_id = ? OR guest_id = ?", userID, userID).
		Find(&meetings).Error
	return meetings, err
}

// PendingInvites returns PENDING meetings where the user is the guest,
// newest first. Dashboard polling reads this.
func (r *MeetingRepository) PendingInvites(guestID string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.Preload("Host").Preload("Guest").
		Where("guest_id = ? AND status = ?", guestID, models.MeetingStatusPending).
		Order("created_at desc, id desc").
		Find(&meetings).Error
	return meetings, err
}

// AcceptedWithTimes returns the user's ACCEPTED meetings that carry both
// timestamps, the only ones that can book an availability slot.
func (r *MeetingRepository) AcceptedWithTimes(userID string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Where("(host_id = ? OR guest_id = ?) AND status = ?",
			userID, userID, models.MeetingStatusAccepted).
		Where("start_datetime IS NOT NULL AND end_datetime IS NOT NULL").
		Find(&meetings).Error
	return meetings, err
}
