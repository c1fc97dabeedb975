package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap-server/database"
	"skillswap-server/middleware"
	"skillswap-server/models"
)

// RegisterReportRoutes registers user-facing moderation routes
func RegisterReportRoutes(router *gin.RouterGroup) {
	// File a report against another user, optionally tied to a request so
	// moderators can read the chat transcript as evidence
	router.POST("/reports", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req models.ReportCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": bindingErrors(err),
			})
			return
		}

		if req.ReportedUserID == userID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot report yourself"})
			return
		}

		var reported models.User
		if err := database.DB.First(&reported, req.ReportedUserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reported user not found"})
			return
		}

		if req.RequestID != nil {
			var request models.Request
			if err := database.DB.First(&request, *req.RequestID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
				return
			}
			if !request.IsParticipant(userID) {
				c.JSON(http.StatusForbidden, gin.H{"error": "You are not a participant of this request"})
				return
			}
			if request.OtherParticipant(userID) != req.ReportedUserID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Reported user is not the other participant of this request"})
				return
			}
		}

		report := models.Report{
			ReporterID:     userID,
			ReportedUserID: req.ReportedUserID,
			RequestID:      req.RequestID,
			Description:    middleware.SanitizeInput(req.Description),
			Status:         models.ReportStatusOpen,
		}

		if err := database.DB.Create(&report).Error; err != nil {
			log.Printf("❌ Failed to create report: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file report"})
			return
		}

		log.Printf("🔍 Report %d filed: user %d reported user %d", report.ID, userID, req.ReportedUserID)

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Report filed", "data": report})
	})
}
