package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"skillswap-server/config"
	"skillswap-server/database"
	"skillswap-server/middleware"
	"skillswap-server/models"
)

// RegisterSkillOfferRoutes registers skill offer routes
func RegisterSkillOfferRoutes(router *gin.RouterGroup) {
	// Post a skill offer. Multipart form so an optional photo can ride along.
	router.POST("/skill-offers", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req models.SkillOfferCreate
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": bindingErrors(err),
			})
			return
		}

		skills := make([]string, 0, len(req.Skills))
		for _, s := range req.Skills {
			if cleaned := middleware.SanitizeInput(s); cleaned != "" {
				skills = append(skills, cleaned)
			}
		}
		if len(skills) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one skill is required"})
			return
		}

		offer := models.SkillOffer{
			UserID:             userID,
			Skills:             pq.StringArray(skills),
			SkillsToSwap:       pq.StringArray(req.SkillsToSwap),
			Description:        middleware.SanitizeInput(req.Description),
			Location:           middleware.SanitizeInput(req.Location),
			Remotely:           req.Remotely,
			Anonymous:          req.Anonymous,
			ShareWithWomenZone: req.ShareWithWomenZone,
		}

		if header, err := c.FormFile("photo"); err == nil && header != nil {
			if !validateImageFile(header) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Photo must be a jpg, png or webp up to 5MB"})
				return
			}
			folder := config.AppConfig.Media.UploadFolder + "/skill_offers/" + strconv.Itoa(int(userID))
			url, err := uploadImage(c.Request.Context(), header, folder)
			if err != nil {
				log.Printf("❌ Skill offer photo upload failed: %v", err)
				c.JSON(http.StatusBadRequest, gin.H{"error": "Photo upload failed"})
				return
			}
			offer.Photo = &url
			log.Printf("✅ Skill offer photo uploaded: %s", url)
		}

		if err := database.DB.Create(&offer).Error; err != nil {
			log.Printf("❌ Failed to create skill offer: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill offer"})
			return
		}

		log.Printf("✅ Skill offer %d posted by user %d", offer.ID, userID)

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Skill offer posted", "data": offer})
	})

	// Browse skill offers, newest first. ?zone=women restricts the feed to
	// women-zone offers and is only available to women.
	router.GET("/skill-offers", func(c *gin.Context) {
		query := database.DB.Preload("User").Order("created_at DESC")

		if c.Query("zone") == "women" {
			userVal, _ := c.Get("user")
			user, ok := userVal.(models.User)
			if !ok || user.Gender != models.GenderFemale {
				c.JSON(http.StatusForbidden, gin.H{"error": "The women zone is only available to women"})
				return
			}
			query = query.Where("share_with_women_zone = ?", true)
		}

		if mine := c.Query("user_id"); mine != "" {
			query = query.Where("user_id = ?", mine)
		}

		var offers []models.SkillOffer
		if err := query.Find(&offers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skill offers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": offers})
	})

	// Get one skill offer
	router.GET("/skill-offers/:id", func(c *gin.Context) {
		var offer models.SkillOffer
		if err := database.DB.Preload("User").First(&offer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill offer not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": offer})
	})

	// Take down a skill offer (owner only). Soft delete so existing requests
	// keep their reference.
	router.DELETE("/skill-offers/:id", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var offer models.SkillOffer
		if err := database.DB.First(&offer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill offer not found"})
			return
		}

		if offer.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own skill offers"})
			return
		}

		if err := database.DB.Delete(&offer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill offer"})
			return
		}

		log.Printf("🚫 Skill offer %d deleted by user %d", offer.ID, userID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill offer deleted"})
	})
}
