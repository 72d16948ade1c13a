// File: /models/friend.go
package models

import "time"

type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "PENDING"
	FriendRequestStatusAccepted FriendRequestStatus = "ACCEPTED"
	FriendRequestStatusDeclined FriendRequestStatus = "DECLINED"
)

type FriendRequest struct {
	ID         uint                `json:"id" gorm:"primaryKey"`
	FromUserID string              `json:"from_user_id" gorm:"not null;size:191;index"`
	ToUserID   string              `json:"to_user_id" gorm:"not null;size:191;index"`
	Status     FriendRequestStatus `json:"status" gorm:"not null;default:'PENDING';size:20"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	FromUser User `json:"-" gorm:"foreignKey:FromUserID"`
	ToUser   User `json:"-" gorm:"foreignKey:ToUserID"`
}

// FriendRequestResponse is the inbox shape with the sender embedded.
type FriendRequestResponse struct {
	ID        uint                `json:"id"`
	FromUser  PublicUser          `json:"from_user"`
	Status    FriendRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

func (fr *FriendRequest) ToResponse() FriendRequestResponse {
	return FriendRequestResponse{
		ID:        fr.ID,
		FromUser:  fr.FromUser.Public(),
		Status:    fr.Status,
		CreatedAt: fr.CreatedAt,
	}
}

// Friendship rows come in symmetric pairs: accepting a request creates
// (user, friend) and (friend, user).
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	FriendID  string    `json:"friend_id" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`

	User   User `json:"-" gorm:"foreignKey:UserID"`
	Friend User `json:"-" gorm:"foreignKey:FriendID"`
}
