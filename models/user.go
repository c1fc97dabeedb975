package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"size:100;not null"`
	LastName       string    `json:"last_name" gorm:"size:100;not null"`
	Username       string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PhoneNumber    string    `json:"phone_number" gorm:"size:20;uniqueIndex;not null"`
	CnicNumber     string    `json:"cnic_number" gorm:"size:15;uniqueIndex;not null"`
	DateOfBirth    time.Time `json:"date_of_birth" gorm:"not null"`
	Gender         Gender    `json:"gender" gorm:"type:varchar(10);not null;check:gender IN ('Male','Female')"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	ProfilePicture *string   `json:"profile_picture" gorm:"size:255"`
	Location       string    `json:"location" gorm:"size:255"`
	AboutMe        string    `json:"about_me" gorm:"type:text"`
	Role           UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'user';check:role IN ('user','admin')"`
	IsBanned       bool      `json:"is_banned" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Badges      []Badge      `json:"badges,omitempty" gorm:"many2many:user_badges"`
	SkillOffers []SkillOffer `json:"skill_offers,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is a GORM hook that runs before creating a user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// IsAdmin checks if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasBadge checks whether the user's badge set already contains a badge ID
func (u *User) HasBadge(badgeID uint) bool {
	for _, b := range u.Badges {
		if b.ID == badgeID {
			return true
		}
	}
	return false
}
