package models

import (
	"errors"
	"time"
)

// RequestStatus represents the current status of a swap request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusCompleted RequestStatus = "completed"
)

// Lifecycle errors returned by the guard methods below. Handlers map these
// to HTTP status codes.
var (
	ErrNotParticipant   = errors.New("not a participant of this request")
	ErrNotReceiver      = errors.New("only the receiver may perform this action")
	ErrNotPending       = errors.New("request is not pending")
	ErrNotAccepted      = errors.New("request is not accepted")
	ErrAlreadyConfirmed = errors.New("already confirmed")
	ErrRequestTerminal  = errors.New("request is already closed")
	ErrChatClosed       = errors.New("exchange completed, messages closed")
)

// Request represents a skill swap request between two users. The chat
// transcript lives in the messages table keyed by request.
type Request struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	SenderID       uint          `json:"sender_id" gorm:"not null;index"`
	Sender         User          `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	ReceiverID     uint          `json:"receiver_id" gorm:"not null;index"`
	Receiver       User          `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	SkillOfferID   uint          `json:"skill_offer_id" gorm:"not null"`
	SkillOffer     SkillOffer    `json:"skill_offer,omitempty" gorm:"foreignKey:SkillOfferID"`
	SkillRequested string        `json:"skill_requested" gorm:"size:255;not null"`
	InitialMessage string        `json:"initial_message" gorm:"type:text;not null"`
	IsRemote       bool          `json:"is_remote" gorm:"default:false"`
	Location       string        `json:"location" gorm:"size:255"`
	Status         RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	SenderConfirmedReceived   bool `json:"sender_confirmed_received" gorm:"default:false"`
	ReceiverConfirmedReceived bool `json:"receiver_confirmed_received" gorm:"default:false"`

	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:RequestID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Request model
func (Request) TableName() string {
	return "requests"
}

// IsParticipant reports whether userID is one of the two sides of the swap
func (r *Request) IsParticipant(userID uint) bool {
	return r.SenderID == userID || r.ReceiverID == userID
}

// OtherParticipant returns the counterpart of userID. Callers must check
// IsParticipant first.
func (r *Request) OtherParticipant(userID uint) uint {
	if r.SenderID == userID {
		return r.ReceiverID
	}
	return r.SenderID
}

// IsTerminal reports whether the request is in a final state
func (r *Request) IsTerminal() bool {
	switch r.Status {
	case RequestStatusRejected, RequestStatusCancelled, RequestStatusCompleted:
		return true
	}
	return false
}

// Accept moves a pending request to accepted. Only the receiver may accept.
func (r *Request) Accept(userID uint) error {
	if r.ReceiverID != userID {
		if r.SenderID == userID {
			return ErrNotReceiver
		}
		return ErrNotParticipant
	}
	if r.Status != RequestStatusPending {
		return ErrNotPending
	}
	r.Status = RequestStatusAccepted
	return nil
}

// Reject moves a pending request to rejected. Only the receiver may reject.
func (r *Request) Reject(userID uint) error {
	if r.ReceiverID != userID {
		if r.SenderID == userID {
			return ErrNotReceiver
		}
		return ErrNotParticipant
	}
	if r.Status != RequestStatusPending {
		return ErrNotPending
	}
	r.Status = RequestStatusRejected
	return nil
}

// Cancel moves a pending or accepted request to cancelled. Either
// participant may cancel before completion.
func (r *Request) Cancel(userID uint) error {
	if !r.IsParticipant(userID) {
		return ErrNotParticipant
	}
	if r.IsTerminal() {
		return ErrRequestTerminal
	}
	r.Status = RequestStatusCancelled
	return nil
}

// Confirm records that userID received the skill. Each participant may
// confirm exactly once, and only while the request is accepted. When both
// confirmations are in, the request transitions to completed; the returned
// bool reports whether this call completed the swap.
func (r *Request) Confirm(userID uint) (bool, error) {
	if !r.IsParticipant(userID) {
		return false, ErrNotParticipant
	}
	if r.Status != RequestStatusAccepted {
		return false, ErrNotAccepted
	}
	if r.SenderID == userID {
		if r.SenderConfirmedReceived {
			return false, ErrAlreadyConfirmed
		}
		r.SenderConfirmedReceived = true
	} else {
		if r.ReceiverConfirmedReceived {
			return false, ErrAlreadyConfirmed
		}
		r.ReceiverConfirmedReceived = true
	}
	if r.SenderConfirmedReceived && r.ReceiverConfirmedReceived {
		r.Status = RequestStatusCompleted
		return true, nil
	}
	return false, nil
}

// CanMessage reports whether userID may append to the chat transcript.
// Chat is read-only once the exchange has completed.
func (r *Request) CanMessage(userID uint) error {
	if !r.IsParticipant(userID) {
		return ErrNotParticipant
	}
	if r.Status == RequestStatusCompleted {
		return ErrChatClosed
	}
	return nil
}

// Message is a single chat entry within a request's transcript
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RequestID uint      `json:"request_id" gorm:"not null;index"`
	SenderID  uint      `json:"sender_id" gorm:"not null"`
	Sender    User      `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
}

// TableName specifies the table name for the Message model
func (Message) TableName() string {
	return "messages"
}

// RequestCreate represents the request structure for creating a swap request
type RequestCreate struct {
	ReceiverID     uint   `json:"receiver_id" binding:"required"`
	SkillOfferID   uint   `json:"skill_offer_id" binding:"required"`
	SkillRequested string `json:"skill_requested" binding:"required"`
	Message        string `json:"message" binding:"required"`
	IsRemote       *bool  `json:"is_remote" binding:"required"`
	Location       string `json:"location"`
}

// MessageCreate represents the request structure for a chat message
type MessageCreate struct {
	Text string `json:"text" binding:"required"`
}
