// File: /controllers/skill_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"peerza-api/models"
	"peerza-api/repositories"
)

type SkillController struct {
	skills *repositories.SkillRepository
	users  *repositories.UserRepository
}

func NewSkillController(skills *repositories.SkillRepository, users *repositories.UserRepository) *SkillController {
	return &SkillController{skills: skills, users: users}
}

func (sc *SkillController) GetMySkills(c *gin.Context) {
	userID := c.GetString("user_id")

	skills, err := sc.skills.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}

	responses := make([]models.UserSkillResponse, 0, len(skills))
	for i := range skills {
		responses = append(responses, skills[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

type addSkillRequest struct {
	SkillName   string `json:"skill_name" binding:"required"`
	SkillType   string `json:"skill_type" binding:"required"`
	Proficiency string `json:"proficiency"`
}

func (sc *SkillController) AddSkill(c *gin.Context) {
	userID := c.GetString("user_id")

	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skillType := models.SkillType(strings.ToUpper(req.SkillType))
	if skillType != models.SkillTypeTeach && skillType != models.SkillTypeLearn {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skill_type must be TEACH or LEARN"})
		return
	}

	user, err := sc.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Freemium gate: non-Pro accounts are capped.
	if !user.IsPro {
		count, err := sc.skills.CountForUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
			return
		}
		if count >= models.FreeSkillLimit {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Free Plan Limit Reached. Upgrade to Pro to add more skills.",
			})
			return
		}
	}

	skill, err := sc.skills.GetOrCreateSkill(strings.TrimSpace(req.SkillName))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve skill"})
		return
	}

	entry := models.UserSkill{
		UserID:    userID,
		SkillID:   skill.ID,
		SkillType: skillType,
	}
	if req.Proficiency != "" {
		entry.Proficiency = req.Proficiency
	}

	if err := sc.skills.Add(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Skill added!"})
}

func (sc *SkillController) DeleteSkill(c *gin.Context) {
	userID := c.GetString("user_id")

	skillID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	if err := sc.skills.DeleteForUser(uint(skillID), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchPeers finds users who can teach a skill matching the query.
func (sc *SkillController) SearchPeers(c *gin.Context) {
	userID := c.GetString("user_id")

	query := strings.TrimSpace(c.Query("skill"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a skill to search for."})
		return
	}

	matches, err := sc.skills.SearchTeachers(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	responses := make([]models.UserSkillResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, matches[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}
