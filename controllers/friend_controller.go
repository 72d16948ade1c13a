// File: /controllers/friend_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"peerza-api/models"
	"peerza-api/repositories"
)

type FriendController struct {
	friends       *repositories.FriendRepository
	users         *repositories.UserRepository
	notifications *repositories.NotificationRepository
}

func NewFriendController(friends *repositories.FriendRepository, users *repositories.UserRepository, notifications *repositories.NotificationRepository) *FriendController {
	return &FriendController{friends: friends, users: users, notifications: notifications}
}

func (fc *FriendController) GetFriends(c *gin.Context) {
	userID := c.GetString("user_id")

	friendships, err := fc.friends.ListFriendships(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	data := make([]gin.H, 0, len(friendships))
	for i := range friendships {
		data = append(data, gin.H{
			"id":     friendships[i].ID,
			"friend": friendships[i].Friend.Public(),
		})
	}
	c.JSON(http.StatusOK, data)
}

func (fc *FriendController) SendFriendRequest(c *gin.Context) {
	userID := c.GetString("user_id")
	targetID := c.Param("user_id")

	if targetID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "cannot friend yourself"})
		return
	}

	if _, err := fc.users.GetByID(targetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	request, err := fc.friends.SendRequest(userID, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send friend request"})
		return
	}

	if err := fc.notifications.Notify(targetID, &userID, models.NotificationTypeFriendRequest,
		models.JSONMap{"request_id": request.ID}); err != nil {
		logrus.WithError(err).Warn("failed to create friend request notification")
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "request_id": request.ID})
}

type respondFriendRequest struct {
	Action string `json:"action"`
}

func (fc *FriendController) RespondFriendRequest(c *gin.Context) {
	userID := c.GetString("user_id")

	requestID, err := strconv.ParseUint(c.Param("request_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var req respondFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	action := strings.ToUpper(strings.TrimSpace(req.Action))
	if action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid action"})
		return
	}

	request, err := fc.friends.GetForRecipient(uint(requestID), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	switch action {
	case "ACCEPT":
		if err := fc.friends.Accept(request); err != nil {
			if err == repositories.ErrAlreadyResponded {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Request already responded"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept friend request"})
			return
		}
		if err := fc.notifications.Notify(request.FromUserID, &userID,
			models.NotificationTypeFriendAccepted, models.JSONMap{}); err != nil {
			logrus.WithError(err).Warn("failed to create friend accepted notification")
		}
	default:
		if err := fc.friends.Decline(request); err != nil {
			if err == repositories.ErrAlreadyResponded {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Request already responded"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline friend request"})
			return
		}
		if err := fc.notifications.Notify(request.FromUserID, &userID,
			models.NotificationTypeFriendDeclined, models.JSONMap{}); err != nil {
			logrus.WithError(err).Warn("failed to create friend declined notification")
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetRequestInbox lists PENDING requests addressed to the current user.
func (fc *FriendController) GetRequestInbox(c *gin.Context) {
	userID := c.GetString("user_id")

	requests, err := fc.friends.PendingInbox(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}

	responses := make([]models.FriendRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}
