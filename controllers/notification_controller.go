// File: /controllers/notification_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peerza-api/models"
	"peerza-api/repositories"
	"peerza-api/utils"
)

type NotificationController struct {
	notifications *repositories.NotificationRepository
}

func NewNotificationController(notifications *repositories.NotificationRepository) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications returns the unread feed, newest first, capped.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	notifications, err := nc.notifications.UnreadForUser(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notifications[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := nc.notifications.MarkRead(uint(notificationID), userID); err != nil {
		utils.SendError(c, http.StatusNotFound, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := nc.notifications.MarkAllRead(userID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to mark notifications read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
