package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillswap-server/database"
	"skillswap-server/models"
)

const notificationPageSize = 5

// RegisterNotificationRoutes registers notification feed routes
func RegisterNotificationRoutes(router *gin.RouterGroup) {
	// Paginated feed, newest first. ?page=N starting at 1.
	router.GET("/notifications", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		skip := (page - 1) * notificationPageSize

		var total int64
		if err := database.DB.Model(&models.Notification{}).
			Where("recipient_id = ?", userID).
			Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}

		var unreadCount int64
		database.DB.Model(&models.Notification{}).
			Where("recipient_id = ? AND is_read = ?", userID, false).
			Count(&unreadCount)

		var notifications []models.Notification
		if err := database.DB.
			Preload("Sender").
			Where("recipient_id = ?", userID).
			Order("created_at DESC").
			Offset(skip).
			Limit(notificationPageSize).
			Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"notifications": notifications,
				"page":          page,
				"total":         total,
				"unread_count":  unreadCount,
				"has_more":      total > int64(skip+notificationPageSize),
			},
		})
	})

	// Unread count only, for badge polling
	router.GET("/notifications/unread-count", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var unreadCount int64
		if err := database.DB.Model(&models.Notification{}).
			Where("recipient_id = ? AND is_read = ?", userID, false).
			Count(&unreadCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch unread count"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"unread_count": unreadCount}})
	})

	// Mark one notification read (owner only)
	router.PUT("/notifications/:id/read", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var notification models.Notification
		if err := database.DB.First(&notification, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}

		if notification.RecipientID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "This notification does not belong to you"})
			return
		}

		notification.IsRead = true
		if err := database.DB.Save(&notification).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": notification})
	})

	// Mark everything read
	router.PUT("/notifications/read-all", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		if err := database.DB.Model(&models.Notification{}).
			Where("recipient_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "All notifications marked as read"})
	})
}
