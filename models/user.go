// File: /models/user.go
package models

import (
	"time"
)

// OnlineWindow is how long after the last authenticated request a user
// still counts as online.
const OnlineWindow = 300 * time.Second

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password     string    `json:"-" gorm:"not null;size:255"`
	Bio          string    `json:"bio" gorm:"type:text"`
	Avatar       *string   `json:"avatar" gorm:"size:500"`
	IsPro        bool      `json:"is_pro" gorm:"default:false"`
	FirebaseUID  *string   `json:"firebase_uid" gorm:"uniqueIndex;size:191"`
	LastActiveAt time.Time `json:"last_active_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsOnline reports whether the user was active within the online window.
func (u *User) IsOnline() bool {
	return time.Since(u.LastActiveAt) < OnlineWindow
}

// PublicUser is the profile shape exposed to other users.
type PublicUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Bio      string  `json:"bio"`
	IsPro    bool    `json:"is_pro"`
	Avatar   *string `json:"avatar"`
	Online   bool    `json:"online"`
}

// Public converts a User to its public representation.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		IsPro:    u.IsPro,
		Avatar:   u.Avatar,
		Online:   u.IsOnline(),
	}
}
