package services

import (
	"log"

	"skillswap-server/database"
	"skillswap-server/models"
)

// NotificationPusher delivers real-time notification events to connected
// clients. The websocket hub satisfies this; it is optional and the service
// works without one.
type NotificationPusher interface {
	SendToUser(userID uint, payload interface{}) bool
}

var pusher NotificationPusher

// SetPusher registers the real-time delivery backend. Called once at startup.
func SetPusher(p NotificationPusher) {
	pusher = p
}

// Notify creates a notification for recipientID. Notifications a user would
// trigger for themselves are suppressed. Failures are logged and never
// propagated: notifications are a side effect, not part of the primary
// mutation.
func Notify(recipientID uint, senderID *uint, ntype models.NotificationType, referenceID uint, text string) {
	if senderID != nil && *senderID == recipientID {
		return
	}

	notification := models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        ntype,
		ReferenceID: referenceID,
		Text:        text,
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("⚠️ Failed to create %s notification for user %d: %v", ntype, recipientID, err)
		return
	}

	log.Printf("🔔 Notification created for user %d: %s", recipientID, ntype)

	if pusher != nil {
		if sent := pusher.SendToUser(recipientID, notification); sent {
			log.Printf("📡 Notification pushed to user %d", recipientID)
		}
	}
}
