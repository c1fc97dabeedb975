package models

import "time"

// ReportStatus tracks a moderation report through review
type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// Report attaches to a request to supply chat evidence to a moderator
type Report struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	ReporterID     uint         `json:"reporter_id" gorm:"not null;index"`
	Reporter       User         `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	ReportedUserID uint         `json:"reported_user_id" gorm:"not null;index"`
	ReportedUser   User         `json:"reported_user,omitempty" gorm:"foreignKey:ReportedUserID"`
	RequestID      *uint        `json:"request_id"`
	Request        *Request     `json:"request,omitempty" gorm:"foreignKey:RequestID"`
	Description    string       `json:"description" gorm:"type:text;not null"`
	Status         ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// TableName specifies the table name for the Report model
func (Report) TableName() string {
	return "reports"
}

// ReportCreate represents the request structure for filing a report
type ReportCreate struct {
	ReportedUserID uint   `json:"reported_user_id" binding:"required"`
	Description    string `json:"description" binding:"required"`
	RequestID      *uint  `json:"request_id"`
}

// ReportResolve represents the moderator's decision on a report
type ReportResolve struct {
	Status  ReportStatus `json:"status" binding:"required,oneof=resolved dismissed"`
	BanUser bool         `json:"ban_user"`
}
