// File: /repositories/skill_repository.go
package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"peerza-api/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// GetOrCreateSkill resolves a skill by name, creating it on first use.
func (r *SkillRepository) GetOrCreateSkill(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("name = ?", name).First(&skill).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill = models.Skill{Name: name}
	if err := r.db.Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) ListForUser(userID string) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.Preload("User").Preload("Skill").
		Where("user_id = ?", userID).
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) CountForUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserSkill{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *SkillRepository) Add(entry *models.UserSkill) error {
	return r.db.Create(entry).Error
}

// DeleteForUser removes a skill entry owned by userID.
func (r *SkillRepository) DeleteForUser(id uint, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserSkill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchTeachers finds TEACH entries whose skill name contains the query,
// excluding the searching user.
func (r *SkillRepository) SearchTeachers(query, excludeUserID string) ([]models.UserSkill, error) {
	var matches []models.UserSkill
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Joins("JOIN skills ON skills.id = user_skills.skill_id").
		Where("LOWER(skills.name) LIKE ?", pattern).
		Where("user_skills.skill_type = ?", models.SkillTypeTeach).
		Where("user_skills.user_id <> ?", excludeUserID).
		Preload("User").Preload("Skill").
		Find(&matches).Error
	return matches, err
}
