package models

import "time"

// BadgeCriteriaType names the numeric criterion a badge is granted on
type BadgeCriteriaType string

const (
	CriteriaSkillExchangesCompleted BadgeCriteriaType = "skill_exchanges_completed"
	CriteriaSkillOffersMade         BadgeCriteriaType = "skill_offers_made"
	CriteriaEndorsementsReceived    BadgeCriteriaType = "endorsements_received"
)

// Badge is a static definition seeded at startup. The lifecycle only grants
// references to users, it never creates definitions.
type Badge struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	Name          string            `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description   string            `json:"description" gorm:"not null"`
	Icon          string            `json:"icon" gorm:"size:50;not null"`
	CriteriaType  BadgeCriteriaType `json:"criteria_type" gorm:"type:varchar(40);not null"`
	CriteriaValue int               `json:"criteria_value" gorm:"not null"`
	CreatedAt     time.Time         `json:"created_at"`
}

// TableName specifies the table name for the Badge model
func (Badge) TableName() string {
	return "badges"
}
