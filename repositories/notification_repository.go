// File: /repositories/notification_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"peerza-api/models"
)

// UnreadFeedLimit caps the notification feed; clients poll it.
const UnreadFeedLimit = 50

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Notify appends an event to the recipient's feed.
func (r *NotificationRepository) Notify(userID string, actorID *string, typ models.NotificationType, data models.JSONMap) error {
	return r.db.Create(&models.Notification{
		UserID:  userID,
		ActorID: actorID,
		Type:    typ,
		Data:    data,
	}).Error
}

// UnreadForUser returns unread notifications, newest first, capped.
func (r *NotificationRepository) UnreadForUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Preload("Actor").
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at desc, id desc").
		Limit(UnreadFeedLimit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flips one notification, scoped to its recipient.
func (r *NotificationRepository) MarkRead(id uint, userID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(userID string) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// DeleteReadBefore prunes read notifications older than cutoff. The
// cleanup job calls this; the unread feed never shows them again anyway.
func (r *NotificationRepository) DeleteReadBefore(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

// CountByType is used by tests and admin tooling to verify fan-out.
func (r *NotificationRepository) CountByType(userID string, typ models.NotificationType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", userID, typ).
		Count(&count).Error
	return count, err
}
