// File: /repositories/message_repository.go
package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"peerza-api/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	return r.db.Create(message).Error
}

// Conversation returns both directions of the pair, oldest first.
func (r *MessageRepository) Conversation(userID, peerID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("timestamp asc").
		Find(&messages).Error
	return messages, err
}

// MarkRead flips all unread messages from peerID to userID.
func (r *MessageRepository) MarkRead(userID, peerID string) error {
	return r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", peerID, userID, false).
		Update("is_read", true).Error
}

func (r *MessageRepository) UnreadCount(userID, peerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", peerID, userID, false).
		Count(&count).Error
	return count, err
}

// LastMessage returns the most recent message of the pair, or nil.
func (r *MessageRepository) LastMessage(userID, peerID string) (*models.Message, error) {
	var message models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("timestamp desc").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// PeerIDs returns every user that has exchanged at least one message
// with userID, in either direction.
func (r *MessageRepository) PeerIDs(userID string) ([]string, error) {
	var senders, receivers []string
	if err := r.db.Model(&models.Message{}).
		Where("receiver_id = ?", userID).
		Distinct().Pluck("sender_id", &senders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Message{}).
		Where("sender_id = ?", userID).
		Distinct().Pluck("receiver_id", &receivers).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(senders)+len(receivers))
	peers := make([]string, 0, len(senders)+len(receivers))
	for _, id := range append(senders, receivers...) {
		if id == userID || seen[id] {
			continue
		}
		seen[id] = true
		peers = append(peers, id)
	}
	return peers, nil
}
