package services

import (
	"fmt"
	"log"

	"skillswap-server/database"
	"skillswap-server/models"
)

// AwardBadge grants the named badge to a user if they don't already have it.
// Awarding the same badge twice is a no-op, so callers can invoke this on
// every qualifying event without tracking whether the user qualified before.
// A missing badge definition is logged and ignored.
func AwardBadge(userID uint, badgeName string) {
	var badge models.Badge
	if err := database.DB.Where("name = ?", badgeName).First(&badge).Error; err != nil {
		log.Printf("⚠️ Badge %q not found, skipping award for user %d", badgeName, userID)
		return
	}

	var user models.User
	if err := database.DB.Preload("Badges").First(&user, userID).Error; err != nil {
		log.Printf("⚠️ Failed to load user %d for badge award: %v", userID, err)
		return
	}

	if user.HasBadge(badge.ID) {
		return
	}

	if err := database.DB.Model(&user).Association("Badges").Append(&badge); err != nil {
		log.Printf("⚠️ Failed to award badge %q to user %d: %v", badgeName, userID, err)
		return
	}

	log.Printf("✅ Badge %q awarded to user %d", badgeName, userID)

	Notify(userID, nil, models.NotificationBadgeAwarded, badge.ID,
		fmt.Sprintf("🎉 Congratulations! You've earned the \"%s\" badge!", badge.Name))
}

// TopRatedEligible reports whether a user's review stats qualify for the
// Top Rated badge: at least 5 reviews averaging 4.5 or better.
func TopRatedEligible(totalReviews int64, averageRating float64) bool {
	return totalReviews >= 5 && averageRating >= 4.5
}
