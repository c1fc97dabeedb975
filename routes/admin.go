package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap-server/database"
	"skillswap-server/models"
	"skillswap-server/services"
)

// RegisterAdminRoutes registers moderation routes. Callers must mount these
// behind AuthMiddleware plus AdminMiddleware.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	jwtService := services.NewJWTService()

	// List all users
	router.GET("/users", func(c *gin.Context) {
		var users []models.User
		if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
	})

	// Toggle a user's ban. Banning revokes their refresh tokens so the ban
	// takes effect as soon as the access token expires.
	router.PUT("/users/:id/ban", func(c *gin.Context) {
		adminID := c.GetUint("user_id")

		var user models.User
		if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if user.ID == adminID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot ban yourself"})
			return
		}

		user.IsBanned = !user.IsBanned
		if err := database.DB.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		if user.IsBanned {
			if err := jwtService.RevokeAllUserTokens(user.ID); err != nil {
				log.Printf("⚠️ Failed to revoke tokens for banned user %d: %v", user.ID, err)
			}
			log.Printf("🚫 User %d banned by admin %d", user.ID, adminID)
		} else {
			log.Printf("✅ User %d unbanned by admin %d", user.ID, adminID)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	})

	// List reports, open first then newest
	router.GET("/reports", func(c *gin.Context) {
		var reports []models.Report
		if err := database.DB.
			Preload("Reporter").Preload("ReportedUser").Preload("Request").
			Order("CASE WHEN status = 'open' THEN 0 ELSE 1 END, created_at DESC").
			Find(&reports).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": reports})
	})

	// Resolve or dismiss a report, optionally banning the reported user
	router.PUT("/reports/:id", func(c *gin.Context) {
		adminID := c.GetUint("user_id")

		var req models.ReportResolve
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": bindingErrors(err),
			})
			return
		}

		var report models.Report
		if err := database.DB.First(&report, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}

		if report.Status != models.ReportStatusOpen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Report has already been reviewed"})
			return
		}

		report.Status = req.Status
		if err := database.DB.Save(&report).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
			return
		}

		if req.Status == models.ReportStatusResolved && req.BanUser {
			var reported models.User
			if err := database.DB.First(&reported, report.ReportedUserID).Error; err == nil {
				reported.IsBanned = true
				database.DB.Save(&reported)
				if err := jwtService.RevokeAllUserTokens(reported.ID); err != nil {
					log.Printf("⚠️ Failed to revoke tokens for banned user %d: %v", reported.ID, err)
				}
				log.Printf("🚫 User %d banned via report %d by admin %d", reported.ID, report.ID, adminID)
			}
		}

		log.Printf("✅ Report %d marked %s by admin %d", report.ID, report.Status, adminID)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
	})
}
