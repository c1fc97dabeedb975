package main

import (
	"log"

	"skillswap-server/database"
	"skillswap-server/models"
)

// seedBadges inserts the badge definitions if they are missing. Safe to run
// on every startup.
func seedBadges() {
	badges := []models.Badge{
		{
			Name:          "First Swap",
			Description:   "Completed your first skill exchange",
			Icon:          "Handshake",
			CriteriaType:  models.CriteriaSkillExchangesCompleted,
			CriteriaValue: 1,
		},
		{
			Name:          "Top Rated",
			Description:   "Received at least 5 reviews with an average of 4.5 stars or better",
			Icon:          "Star",
			CriteriaType:  models.CriteriaEndorsementsReceived,
			CriteriaValue: 5,
		},
		{
			Name:          "Community Pillar",
			Description:   "Posted 5 skill offers for the community",
			Icon:          "Heart",
			CriteriaType:  models.CriteriaSkillOffersMade,
			CriteriaValue: 5,
		},
	}

	for _, badge := range badges {
		var existing models.Badge
		if err := database.DB.Where("name = ?", badge.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&badge).Error; err != nil {
			log.Printf("⚠️ Failed to seed badge %q: %v", badge.Name, err)
			continue
		}
		log.Printf("✅ Seeded badge: %s", badge.Name)
	}
}
