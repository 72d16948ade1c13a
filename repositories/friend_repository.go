// File: /repositories/friend_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"peerza-api/models"
)

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// SendRequest gets or creates the request for the ordered (from, to)
// pair. An existing non-PENDING request is reset to PENDING so users can
// re-friend after a decline.
func (r *FriendRepository) SendRequest(fromUserID, toUserID string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&request).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		request = models.FriendRequest{
			FromUserID: fromUserID,
			ToUserID:   toUserID,
			Status:     models.FriendRequestStatusPending,
		}
		if err := r.db.Create(&request).Error; err != nil {
			return nil, err
		}
		return &request, nil
	}

	if request.Status != models.FriendRequestStatusPending {
		request.Status = models.FriendRequestStatusPending
		if err := r.db.Save(&request).Error; err != nil {
			return nil, err
		}
	}
	return &request, nil
}

// GetForRecipient loads a request only if it is addressed to userID.
func (r *FriendRepository) GetForRecipient(id uint, userID string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.Where("id = ? AND to_user_id = ?", id, userID).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Accept transitions the request to ACCEPTED and creates both directions
// of the friendship. The status change is a conditional update guarded
// on PENDING so concurrent responses cannot both win.
func (r *FriendRepository) Accept(request *models.FriendRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND status = ?", request.ID, models.FriendRequestStatusPending).
			Update("status", models.FriendRequestStatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyResponded
		}
		request.Status = models.FriendRequestStatusAccepted

		if err := getOrCreateFriendship(tx, request.ToUserID, request.FromUserID); err != nil {
			return err
		}
		return getOrCreateFriendship(tx, request.FromUserID, request.ToUserID)
	})
}

// Decline transitions the request to DECLINED, guarded on PENDING.
func (r *FriendRepository) Decline(request *models.FriendRequest) error {
	result := r.db.Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", request.ID, models.FriendRequestStatusPending).
		Update("status", models.FriendRequestStatusDeclined)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyResponded
	}
	request.Status = models.FriendRequestStatusDeclined
	return nil
}

func getOrCreateFriendship(tx *gorm.DB, userID, friendID string) error {
	var friendship models.Friendship
	err := tx.Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&friendship).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&models.Friendship{UserID: userID, FriendID: friendID}).Error
}

// PendingInbox lists PENDING requests addressed to userID.
func (r *FriendRepository) PendingInbox(userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.Preload("FromUser").
		Where("to_user_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Find(&requests).Error
	return requests, err
}

func (r *FriendRepository) ListFriendships(userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := r.db.Preload("Friend").
		Where("user_id = ?", userID).
		Find(&friendships).Error
	return friendships, err
}

// FriendIDs returns the ids of all declared friends of userID.
func (r *FriendRepository) FriendIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	return ids, err
}
