// File: /models/message.go
package models

import "time"

type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   string    `json:"sender_id" gorm:"not null;size:191;index"`
	ReceiverID string    `json:"receiver_id" gorm:"not null;size:191;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`

	Sender   User `json:"-" gorm:"foreignKey:SenderID"`
	Receiver User `json:"-" gorm:"foreignKey:ReceiverID"`
}

// Conversation summarizes one chat peer for the conversation list.
type Conversation struct {
	Peer        PublicUser `json:"peer"`
	UnreadCount int64      `json:"unread_count"`
	LastMessage *Message   `json:"last_message"`
}
