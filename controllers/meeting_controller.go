// File: /controllers/meeting_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"peerza-api/models"
	"peerza-api/repositories"
	"peerza-api/services"
)

type MeetingController struct {
	meetings      *repositories.MeetingRepository
	users         *repositories.UserRepository
	notifications *repositories.NotificationRepository
	presence      *services.PresenceService
}

func NewMeetingController(meetings *repositories.MeetingRepository, users *repositories.UserRepository, notifications *repositories.NotificationRepository, presence *services.PresenceService) *MeetingController {
	return &MeetingController{
		meetings:      meetings,
		users:         users,
		notifications: notifications,
		presence:      presence,
	}
}

type requestMeetingRequest struct {
	GuestID        string     `json:"guest_id" binding:"required"`
	Topic          string     `json:"topic"`
	StartDatetime  *time.Time `json:"start_datetime"`
	EndDatetime    *time.Time `json:"end_datetime"`
	AvailabilityID *uint      `json:"availability_id"`
}

// RequestMeeting creates a PENDING meeting and notifies the guest.
func (mc *MeetingController) RequestMeeting(c *gin.Context) {
	hostID := c.GetString("user_id")

	var req requestMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := mc.users.GetByID(req.GuestID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "guest not found"})
		return
	}

	meeting := models.Meeting{
		HostID:         hostID,
		GuestID:        guest.ID,
		AvailabilityID: req.AvailabilityID,
		Topic:          req.Topic,
		StartDatetime:  req.StartDatetime,
		EndDatetime:    req.EndDatetime,
		Status:         models.MeetingStatusPending,
	}
	if err := mc.meetings.Create(&meeting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting"})
		return
	}

	if err := mc.notifications.Notify(guest.ID, &hostID, models.NotificationTypeMeetingRequest,
		models.JSONMap{"meeting_id": meeting.ID}); err != nil {
		logrus.WithError(err).Warn("failed to create meeting request notification")
	}

	created, err := mc.meetings.GetByID(meeting.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meeting"})
		return
	}
	c.JSON(http.StatusCreated, created.ToResponse())
}

type respondMeetingRequest struct {
	Response string `json:"response"`
}

// RespondMeeting lets either participant accept or decline a PENDING
// meeting. Accepting assigns the deterministic room identifier.
func (mc *MeetingController) RespondMeeting(c *gin.Context) {
	userID := c.GetString("user_id")

	meetingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var req respondMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response := strings.ToUpper(strings.TrimSpace(req.Response))

	meeting, err := mc.meetings.GetByID(uint(meetingID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return
	}

	if !meeting.IsParticipant(userID) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "forbidden"})
		return
	}

	switch response {
	case "ACCEPT":
		room := models.AcceptedRoom(meeting.HostID, meeting.GuestID, meeting.ID)
		err = mc.meetings.Accept(meeting, room)
	case "DECLINE":
		err = mc.meetings.Decline(meeting)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid response"})
		return
	}
	if err != nil {
		if err == repositories.ErrAlreadyResponded {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Meeting already responded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting"})
		return
	}

	other := meeting.OtherParticipant(userID)
	if err := mc.notifications.Notify(other, &userID, models.NotificationTypeMeetingResponse,
		models.JSONMap{"meeting_id": meeting.ID, "response": string(meeting.Status)}); err != nil {
		logrus.WithError(err).Warn("failed to create meeting response notification")
	}

	c.JSON(http.StatusOK, meeting.ToResponse())
}

// GetMyMeetings returns every meeting the user hosts or attends.
func (mc *MeetingController) GetMyMeetings(c *gin.Context) {
	userID := c.GetString("user_id")

	meetings, err := mc.meetings.ForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	responses := make([]models.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		responses = append(responses, meetings[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

// GetPendingMeetings returns pending invites for the user as guest,
// newest first. The dashboard polls this.
func (mc *MeetingController) GetPendingMeetings(c *gin.Context) {
	userID := c.GetString("user_id")

	meetings, err := mc.meetings.PendingInvites(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	responses := make([]models.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		responses = append(responses, meetings[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

// StartCall signals an ad-hoc call: reuse the pending meeting for the
// pair or create one, notifying the receiver only on creation. The room
// label depends on the pair alone, so retries land in the same room.
func (mc *MeetingController) StartCall(c *gin.Context) {
	callerID := c.GetString("user_id")
	receiverID := c.Param("receiver_id")

	if receiverID == callerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot call yourself."})
		return
	}

	receiver, err := mc.users.GetByID(receiverID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	meeting, created, err := mc.meetings.StartCall(callerID, receiver.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start call"})
		return
	}

	if created {
		if err := mc.notifications.Notify(receiver.ID, &callerID, models.NotificationTypeMeetingRequest,
			models.JSONMap{"meeting_id": meeting.ID}); err != nil {
			logrus.WithError(err).Warn("failed to create call notification")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"room": models.CallRoom(callerID, receiver.ID),
	})
}

// CheckCalls reports the most recent incoming pending call, if any.
func (mc *MeetingController) CheckCalls(c *gin.Context) {
	userID := c.GetString("user_id")

	invites, err := mc.meetings.PendingInvites(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check calls"})
		return
	}
	if len(invites) == 0 {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}

	caller := invites[0].Host.Public()
	mc.presence.Annotate(c.Request.Context(), &caller)
	c.JSON(http.StatusOK, gin.H{"active": true, "caller": caller})
}

// EndCall cancels the pending meeting between the user and the
// counterpart, in either direction. Ending a call that does not exist
// succeeds silently.
func (mc *MeetingController) EndCall(c *gin.Context) {
	userID := c.GetString("user_id")
	receiverID := c.Param("receiver_id")

	if _, err := mc.users.GetByID(receiverID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if _, err := mc.meetings.CancelBetween(userID, receiverID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end call"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
