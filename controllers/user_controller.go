// File: /controllers/user_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"peerza-api/config"
	"peerza-api/models"
	"peerza-api/repositories"
	"peerza-api/services"
)

type UserController struct {
	users    *repositories.UserRepository
	skills   *repositories.SkillRepository
	presence *services.PresenceService
	cfg      *config.Config
}

func NewUserController(users *repositories.UserRepository, skills *repositories.SkillRepository, presence *services.PresenceService, cfg *config.Config) *UserController {
	return &UserController{users: users, skills: skills, presence: presence, cfg: cfg}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Username     *string `json:"username"`
	Bio          *string `json:"bio"`
	RemoveAvatar *string `json:"remove_avatar"`
}

// UpdateProfile applies a partial update. Avatar uploads arrive as
// multipart form data; plain field edits as JSON.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	if _, err := uc.users.GetByID(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if username, ok := c.GetPostForm("username"); ok {
			updates["username"] = username
		}
		if bio, ok := c.GetPostForm("bio"); ok {
			updates["bio"] = bio
		}
		if c.PostForm("remove_avatar") == "true" {
			updates["avatar"] = nil
		}
		if file, err := c.FormFile("avatar"); err == nil {
			filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
			dst := filepath.Join(uc.cfg.UploadDir, "avatars", filename)
			if err := c.SaveUploadedFile(file, dst); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
				return
			}
			updates["avatar"] = filepath.ToSlash(filepath.Join("avatars", filename))
		}
	} else {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Username != nil {
			updates["username"] = *req.Username
		}
		if req.Bio != nil {
			updates["bio"] = *req.Bio
		}
		if req.RemoveAvatar != nil && *req.RemoveAvatar == "true" {
			updates["avatar"] = nil
		}
	}

	if newName, ok := updates["username"].(string); ok {
		if current, err := uc.users.GetByID(userID); err == nil && current.Username != newName && uc.users.UsernameExists(newName) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already taken"})
			return
		}
	}

	if err := uc.users.UpdateFields(userID, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	user, err := uc.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetPublicProfile returns another user's profile with their skills.
func (uc *UserController) GetPublicProfile(c *gin.Context) {
	targetID := c.Param("id")

	user, err := uc.users.GetByID(targetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	skills, err := uc.skills.ListForUser(targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
		return
	}

	skillResponses := make([]models.UserSkillResponse, 0, len(skills))
	for i := range skills {
		skillResponses = append(skillResponses, skills[i].ToResponse())
	}

	public := user.Public()
	uc.presence.Annotate(c.Request.Context(), &public)

	c.JSON(http.StatusOK, gin.H{
		"user":   public,
		"skills": skillResponses,
	})
}

type firebaseUIDRequest struct {
	FirebaseUID string `json:"firebase_uid" binding:"required"`
}

// RegisterFirebaseUID links the external chat/presence provider's uid to
// the current account, releasing it from any other account.
func (uc *UserController) RegisterFirebaseUID(c *gin.Context) {
	userID := c.GetString("user_id")

	var req firebaseUIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "firebase_uid required"})
		return
	}

	if err := uc.users.ClaimFirebaseUID(userID, req.FirebaseUID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register uid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "registered"})
}
