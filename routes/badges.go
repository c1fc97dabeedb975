package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap-server/database"
	"skillswap-server/models"
)

// RegisterBadgeRoutes registers badge routes
func RegisterBadgeRoutes(router *gin.RouterGroup) {
	// All badge definitions
	router.GET("/badges", func(c *gin.Context) {
		var badges []models.Badge
		if err := database.DB.Order("id ASC").Find(&badges).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": badges})
	})

	// Badges earned by a user
	router.GET("/users/:id/badges", func(c *gin.Context) {
		var user models.User
		if err := database.DB.Preload("Badges").First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": user.Badges})
	})
}
