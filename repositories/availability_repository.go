// File: /repositories/availability_repository.go
package repositories

import (
	"gorm.io/gorm"

	"peerza-api/models"
)

type AvailabilityRepository struct {
	db       *gorm.DB
	meetings *MeetingRepository
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db, meetings: NewMeetingRepository(db)}
}

func (r *AvailabilityRepository) ListForUser(userID string) ([]models.Availability, error) {
	var slots []models.Availability
	err := r.db.Where("user_id = ?", userID).Find(&slots).Error
	return slots, err
}

// Upsert creates the slot, or updates it when the id names a slot owned
// by the same user.
func (r *AvailabilityRepository) Upsert(slot *models.Availability) error {
	if slot.ID == 0 {
		return r.db.Create(slot).Error
	}

	result := r.db.Model(&models.Availability{}).
		Where("id = ? AND user_id = ?", slot.ID, slot.UserID).
		Updates(map[string]interface{}{
			"day_of_week": slot.DayOfWeek,
			"start_time":  slot.StartTime,
			"end_time":    slot.EndTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AvailabilityRepository) Delete(id uint, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Availability{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Overlay returns a user's slots annotated with whether any of their
// accepted meetings books them. Slot and meeting counts per user are
// small, so the pairwise scan is evaluated at read time.
func (r *AvailabilityRepository) Overlay(userID string) ([]models.AvailabilityStatus, error) {
	slots, err := r.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	meetings, err := r.meetings.AcceptedWithTimes(userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.AvailabilityStatus, 0, len(slots))
	for i := range slots {
		slot := &slots[i]
		booked := false
		for j := range meetings {
			if slot.BookedBy(&meetings[j]) {
				booked = true
				break
			}
		}
		result = append(result, models.AvailabilityStatus{
			ID:        slot.ID,
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  booked,
		})
	}
	return result, nil
}
