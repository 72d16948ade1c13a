// File: /controllers/availability_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"peerza-api/models"
	"peerza-api/repositories"
	"peerza-api/utils"
)

type AvailabilityController struct {
	availability *repositories.AvailabilityRepository
	users        *repositories.UserRepository
}

func NewAvailabilityController(availability *repositories.AvailabilityRepository, users *repositories.UserRepository) *AvailabilityController {
	return &AvailabilityController{availability: availability, users: users}
}

func (avc *AvailabilityController) GetMySlots(c *gin.Context) {
	userID := c.GetString("user_id")

	slots, err := avc.availability.ListForUser(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, slots)
}

type upsertSlotRequest struct {
	ID        uint   `json:"id"`
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// UpsertSlot creates a weekly slot, or updates one the user owns when an
// id is supplied. Overlapping slots are allowed.
func (avc *AvailabilityController) UpsertSlot(c *gin.Context) {
	userID := c.GetString("user_id")

	var req upsertSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day := strings.ToUpper(strings.TrimSpace(req.DayOfWeek))
	if !utils.IsValidDayOfWeek(day) {
		utils.SendValidationError(c, "day_of_week must be a weekday name")
		return
	}
	if !utils.IsValidClockTime(req.StartTime) || !utils.IsValidClockTime(req.EndTime) {
		utils.SendValidationError(c, "times must be HH:MM")
		return
	}
	if req.EndTime <= req.StartTime {
		utils.SendValidationError(c, "end_time must be after start_time")
		return
	}

	slot := models.Availability{
		ID:        req.ID,
		UserID:    userID,
		DayOfWeek: day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := avc.availability.Upsert(&slot); err != nil {
		utils.SendError(c, http.StatusNotFound, "Slot not found")
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (avc *AvailabilityController) DeleteSlot(c *gin.Context) {
	userID := c.GetString("user_id")

	slotID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	if err := avc.availability.Delete(uint(slotID), userID); err != nil {
		utils.SendError(c, http.StatusNotFound, "Slot not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserSlots returns another user's weekly slots annotated with
// whether an accepted meeting books them. Scheduling UIs read this.
func (avc *AvailabilityController) GetUserSlots(c *gin.Context) {
	targetID := c.Param("id")

	if _, err := avc.users.GetByID(targetID); err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	overlay, err := avc.availability.Overlay(targetID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, overlay)
}
