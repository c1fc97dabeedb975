package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillswap-server/config"
	"skillswap-server/database"
	"skillswap-server/middleware"
	"skillswap-server/models"
)

// RegisterUserRoutes registers public profile and profile update routes
func RegisterUserRoutes(router *gin.RouterGroup) {
	// Public profile with badges and skill offers
	router.GET("/users/:id", func(c *gin.Context) {
		var user models.User
		if err := database.DB.
			Preload("Badges").Preload("SkillOffers").
			First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var summary models.RatingSummary
		database.DB.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
			Where("reviewed_for_id = ?", user.ID).
			Scan(&summary)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"user":    user,
				"summary": summary,
			},
		})
	})

	// Update own profile. Multipart form; all fields optional.
	router.PUT("/profile", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if v, ok := c.GetPostForm("about_me"); ok {
			user.AboutMe = middleware.SanitizeInput(v)
		}
		if v, ok := c.GetPostForm("location"); ok {
			user.Location = middleware.SanitizeInput(v)
		}

		if header, err := c.FormFile("profile_picture"); err == nil && header != nil {
			if !validateImageFile(header) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Profile picture must be a jpg, png or webp up to 5MB"})
				return
			}
			folder := config.AppConfig.Media.UploadFolder + "/profile_pictures/" + strconv.Itoa(int(userID))
			url, err := uploadImage(c.Request.Context(), header, folder)
			if err != nil {
				log.Printf("❌ Profile picture upload failed: %v", err)
				c.JSON(http.StatusBadRequest, gin.H{"error": "Profile picture upload failed"})
				return
			}
			user.ProfilePicture = &url
			log.Printf("✅ Profile picture uploaded for user %d", userID)
		}

		if err := database.DB.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated", "data": user})
	})
}
