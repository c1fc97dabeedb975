package services

import (
	"testing"

	"skillswap-server/models"
)

// database.DB is nil in this test binary, so any attempt to persist a
// notification would panic. A clean return proves the suppression branch
// exits before touching storage.
func TestNotifySuppressesSelfNotification(t *testing.T) {
	sender := uint(5)
	Notify(5, &sender, models.NotificationMessage, 1, "New message from yourself")
}

func TestNotifySuppressionRequiresMatchingSender(t *testing.T) {
	other := uint(6)
	defer func() {
		if recover() == nil {
			t.Error("notification for a different recipient was suppressed")
		}
	}()
	Notify(5, &other, models.NotificationMessage, 1, "New message")
}
