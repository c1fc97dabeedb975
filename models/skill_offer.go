package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SkillOffer represents a posting of skills a user offers for barter
type SkillOffer struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	UserID             uint           `json:"user_id" gorm:"not null;index"`
	User               User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Skills             pq.StringArray `json:"skills" gorm:"type:text[];not null"`
	SkillsToSwap       pq.StringArray `json:"skills_to_swap" gorm:"type:text[]"`
	Description        string         `json:"description" gorm:"type:text;not null"`
	Photo              *string        `json:"photo" gorm:"size:255"`
	Location           string         `json:"location" gorm:"size:255;not null"`
	Remotely           bool           `json:"remotely" gorm:"default:false"`
	Anonymous          bool           `json:"anonymous" gorm:"default:false"`
	ShareWithWomenZone bool           `json:"share_with_women_zone" gorm:"default:false"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name for the SkillOffer model
func (SkillOffer) TableName() string {
	return "skill_offers"
}

// FirstSkill returns the headline skill used in notification texts
func (o *SkillOffer) FirstSkill() string {
	if len(o.Skills) == 0 {
		return "a skill"
	}
	return o.Skills[0]
}

// SkillOfferCreate represents the form for posting a skill offer
type SkillOfferCreate struct {
	Skills             []string `form:"skills" binding:"required,min=1"`
	SkillsToSwap       []string `form:"skills_to_swap"`
	Description        string   `form:"description" binding:"required,max=1000"`
	Location           string   `form:"location" binding:"required"`
	Remotely           bool     `form:"remotely"`
	Anonymous          bool     `form:"anonymous"`
	ShareWithWomenZone bool     `form:"share_with_women_zone"`
}
