// File: /models/skill.go
package models

import "time"

type SkillType string

const (
	SkillTypeTeach SkillType = "TEACH"
	SkillTypeLearn SkillType = "LEARN"
)

// FreeSkillLimit is the maximum number of skill entries a non-Pro user may hold.
const FreeSkillLimit = 2

type Skill struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

type UserSkill struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;size:191;index"`
	SkillID     uint      `json:"skill_id" gorm:"not null"`
	SkillType   SkillType `json:"skill_type" gorm:"not null;size:10"`
	Proficiency string    `json:"proficiency" gorm:"not null;default:'Beginner';size:50"`
	CreatedAt   time.Time `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Skill Skill `json:"-" gorm:"foreignKey:SkillID"`
}

// UserSkillResponse is the API shape for a skill entry with its owner embedded.
type UserSkillResponse struct {
	ID          uint       `json:"id"`
	User        PublicUser `json:"user"`
	Skill       Skill      `json:"skill"`
	Proficiency string     `json:"proficiency"`
	SkillType   SkillType  `json:"skill_type"`
}

func (us *UserSkill) ToResponse() UserSkillResponse {
	return UserSkillResponse{
		ID:          us.ID,
		User:        us.User.Public(),
		Skill:       us.Skill,
		Proficiency: us.Proficiency,
		SkillType:   us.SkillType,
	}
}
