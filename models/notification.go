// File: /models/notification.go
package models

import "time"

type NotificationType string

const (
	NotificationTypeMeetingRequest  NotificationType = "MEETING_REQUEST"
	NotificationTypeMeetingResponse NotificationType = "MEETING_RESPONSE"
	NotificationTypeFriendRequest   NotificationType = "FRIEND_REQUEST"
	NotificationTypeFriendAccepted  NotificationType = "FRIEND_ACCEPTED"
	NotificationTypeFriendDeclined  NotificationType = "FRIEND_DECLINED"
)

type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    string           `json:"user_id" gorm:"not null;size:191;index"` // recipient
	ActorID   *string          `json:"actor_id" gorm:"size:191"`               // who triggered it
	Type      NotificationType `json:"type" gorm:"not null;size:50"`
	Data      JSONMap          `json:"data"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Actor *User `json:"-" gorm:"foreignKey:ActorID"`
}

// NotificationResponse is the feed shape with the actor embedded.
type NotificationResponse struct {
	ID        uint             `json:"id"`
	Actor     *PublicUser      `json:"actor"`
	Type      NotificationType `json:"type"`
	Data      JSONMap          `json:"data"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n *Notification) ToResponse() NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.Actor != nil {
		actor := n.Actor.Public()
		resp.Actor = &actor
	}
	return resp
}
