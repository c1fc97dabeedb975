package models

import (
	"time"

	"github.com/lib/pq"
)

// Review represents a rating left by one participant of a completed swap
// for the other. At most one review per (request, reviewer) pair, enforced
// by a unique index (see database.runMigrations).
type Review struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ReviewerID     uint           `json:"reviewer_id" gorm:"not null;index:idx_reviews_request_reviewer,unique"`
	Reviewer       User           `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	ReviewedForID  uint           `json:"reviewed_for_id" gorm:"not null;index"`
	ReviewedFor    User           `json:"reviewed_for,omitempty" gorm:"foreignKey:ReviewedForID"`
	RequestID      uint           `json:"request_id" gorm:"not null;index:idx_reviews_request_reviewer,unique"`
	Request        Request        `json:"request,omitempty" gorm:"foreignKey:RequestID"`
	SkillOfferID   *uint          `json:"skill_offer_id"`
	SkillOffer     *SkillOffer    `json:"skill_offer,omitempty" gorm:"foreignKey:SkillOfferID"`
	Rating         int            `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment        string         `json:"comment" gorm:"type:text;not null"`
	EndorsedSkills pq.StringArray `json:"endorsed_skills" gorm:"type:text[]"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// ReviewCreate represents the request structure for submitting a review
type ReviewCreate struct {
	RequestID      uint     `json:"request_id" binding:"required"`
	Rating         int      `json:"rating" binding:"required,min=1,max=5"`
	Comment        string   `json:"comment" binding:"required,max=1000"`
	EndorsedSkills []string `json:"endorsed_skills"`
}

// RatingSummary holds the aggregate used for the Top Rated badge check
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

// PendingReview is a derived worklist entry: a completed request the user
// participated in but has not yet reviewed.
type PendingReview struct {
	RequestID           uint       `json:"request_id"`
	SkillOffer          SkillOffer `json:"skill_offer"`
	SkillRequested      string     `json:"skill_requested"`
	Sender              User       `json:"sender"`
	Receiver            User       `json:"receiver"`
	IsCurrentUserSender bool       `json:"is_current_user_sender"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
