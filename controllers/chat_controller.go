// File: /controllers/chat_controller.go
package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"peerza-api/models"
	"peerza-api/repositories"
)

type ChatController struct {
	messages *repositories.MessageRepository
	friends  *repositories.FriendRepository
	users    *repositories.UserRepository
}

func NewChatController(messages *repositories.MessageRepository, friends *repositories.FriendRepository, users *repositories.UserRepository) *ChatController {
	return &ChatController{messages: messages, friends: friends, users: users}
}

// GetConversations unions message-history peers with declared friends
// and summarizes each: unread count and most recent message. Ordered by
// last message time descending; peers with no messages sort last.
func (cc *ChatController) GetConversations(c *gin.Context) {
	userID := c.GetString("user_id")

	messagePeers, err := cc.messages.PeerIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}
	friendIDs, err := cc.friends.FriendIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}

	seen := make(map[string]bool, len(messagePeers)+len(friendIDs))
	peerIDs := make([]string, 0, len(messagePeers)+len(friendIDs))
	for _, id := range append(messagePeers, friendIDs...) {
		if id == userID || seen[id] {
			continue
		}
		seen[id] = true
		peerIDs = append(peerIDs, id)
	}

	conversations := make([]models.Conversation, 0, len(peerIDs))
	for _, peerID := range peerIDs {
		peer, err := cc.users.GetByID(peerID)
		if err != nil {
			continue
		}
		unread, err := cc.messages.UnreadCount(userID, peerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
			return
		}
		last, err := cc.messages.LastMessage(userID, peerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
			return
		}
		conversations = append(conversations, models.Conversation{
			Peer:        peer.Public(),
			UnreadCount: unread,
			LastMessage: last,
		})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		a, b := conversations[i].LastMessage, conversations[j].LastMessage
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Timestamp.After(b.Timestamp)
	})

	c.JSON(http.StatusOK, conversations)
}

func (cc *ChatController) GetMessages(c *gin.Context) {
	userID := c.GetString("user_id")
	peerID := c.Param("user_id")

	if _, err := cc.users.GetByID(peerID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	messages, err := cc.messages.Conversation(userID, peerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (cc *ChatController) SendMessage(c *gin.Context) {
	userID := c.GetString("user_id")
	peerID := c.Param("user_id")

	if _, err := cc.users.GetByID(peerID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Message content required"})
		return
	}

	message := models.Message{
		SenderID:   userID,
		ReceiverID: peerID,
		Content:    content,
	}
	if err := cc.messages.Create(&message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// MarkRead flips all unread messages from the peer to the current user.
func (cc *ChatController) MarkRead(c *gin.Context) {
	userID := c.GetString("user_id")
	peerID := c.Param("user_id")

	if _, err := cc.users.GetByID(peerID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := cc.messages.MarkRead(userID, peerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark messages read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
