package models

import "time"

// NotificationType covers the lifecycle events that alert a user
type NotificationType string

const (
	NotificationRequestReceived  NotificationType = "request_received"
	NotificationRequestAccepted  NotificationType = "request_accepted"
	NotificationRequestRejected  NotificationType = "request_rejected"
	NotificationRequestCancelled NotificationType = "request_cancelled"
	NotificationMessage          NotificationType = "message"
	NotificationReviewReceived   NotificationType = "review_received"
	NotificationSkillConfirmed   NotificationType = "skill_confirmed"
	NotificationBadgeAwarded     NotificationType = "badge_awarded"
)

// Notification is an append-only per-user feed entry. Immutable except for
// the IsRead flag.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RecipientID uint             `json:"recipient_id" gorm:"not null;index"`
	Recipient   User             `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
	SenderID    *uint            `json:"sender_id"`
	Sender      *User            `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Type        NotificationType `json:"type" gorm:"type:varchar(30);not null"`
	ReferenceID uint             `json:"reference_id" gorm:"not null"`
	Text        string           `json:"text" gorm:"not null"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
