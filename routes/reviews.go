package routes

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"skillswap-server/database"
	"skillswap-server/middleware"
	"skillswap-server/models"
	"skillswap-server/services"
)

// RegisterReviewRoutes registers review routes
func RegisterReviewRoutes(router *gin.RouterGroup) {
	// Submit a review for a completed swap
	router.POST("/reviews", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req models.ReviewCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": bindingErrors(err),
			})
			return
		}

		var request models.Request
		if err := database.DB.First(&request, req.RequestID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if !request.IsParticipant(userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not a participant of this request"})
			return
		}

		if request.Status != models.RequestStatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You can only review completed swaps"})
			return
		}

		reviewedForID := request.OtherParticipant(userID)

		review := models.Review{
			ReviewerID:     userID,
			ReviewedForID:  reviewedForID,
			RequestID:      request.ID,
			SkillOfferID:   &request.SkillOfferID,
			Rating:         req.Rating,
			Comment:        middleware.SanitizeInput(req.Comment),
			EndorsedSkills: pq.StringArray(req.EndorsedSkills),
		}

		if err := database.DB.Create(&review).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this swap"})
				return
			}
			log.Printf("❌ Failed to create review for request %d: %v", request.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
			return
		}

		var reviewer models.User
		database.DB.First(&reviewer, userID)

		services.Notify(reviewedForID, &userID, models.NotificationReviewReceived, review.ID,
			fmt.Sprintf("%s left you a %d-star review!", reviewer.Username, review.Rating))

		// Re-check the reviewed user's aggregate for the Top Rated badge
		var summary models.RatingSummary
		if err := database.DB.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
			Where("reviewed_for_id = ?", reviewedForID).
			Scan(&summary).Error; err != nil {
			log.Printf("⚠️ Failed to compute rating summary for user %d: %v", reviewedForID, err)
		} else if services.TopRatedEligible(summary.TotalReviews, summary.AverageRating) {
			services.AwardBadge(reviewedForID, "Top Rated")
		}

		log.Printf("✅ Review %d submitted: user %d -> user %d (%d stars)", review.ID, userID, reviewedForID, review.Rating)

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Review submitted", "data": review})
	})

	// Reviews the current user has received, newest first, with the aggregate
	router.GET("/reviews/received", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var reviews []models.Review
		if err := database.DB.
			Preload("Reviewer").Preload("SkillOffer").
			Where("reviewed_for_id = ?", userID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		var summary models.RatingSummary
		database.DB.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
			Where("reviewed_for_id = ?", userID).
			Scan(&summary)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"reviews": reviews,
				"summary": summary,
			},
		})
	})

	// Completed swaps the user has not reviewed yet
	router.GET("/reviews/pending", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var requests []models.Request
		if err := database.DB.
			Preload("Sender").Preload("Receiver").Preload("SkillOffer").
			Where("status = ? AND (sender_id = ? OR receiver_id = ?)",
				models.RequestStatusCompleted, userID, userID).
			Order("updated_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending reviews"})
			return
		}

		requestIDs := make([]uint, 0, len(requests))
		for _, r := range requests {
			requestIDs = append(requestIDs, r.ID)
		}

		reviewed := make(map[uint]bool)
		if len(requestIDs) > 0 {
			var reviews []models.Review
			database.DB.
				Where("reviewer_id = ? AND request_id IN ?", userID, requestIDs).
				Find(&reviews)
			for _, rv := range reviews {
				reviewed[rv.RequestID] = true
			}
		}

		pending := make([]models.PendingReview, 0)
		for _, r := range requests {
			if reviewed[r.ID] {
				continue
			}
			pending = append(pending, models.PendingReview{
				RequestID:           r.ID,
				SkillOffer:          r.SkillOffer,
				SkillRequested:      r.SkillRequested,
				Sender:              r.Sender,
				Receiver:            r.Receiver,
				IsCurrentUserSender: r.SenderID == userID,
				UpdatedAt:           r.UpdatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": pending})
	})

	// Reviews received by any user, for profile pages
	router.GET("/users/:id/reviews", func(c *gin.Context) {
		var user models.User
		if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var reviews []models.Review
		if err := database.DB.
			Preload("Reviewer").Preload("SkillOffer").
			Where("reviewed_for_id = ?", user.ID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
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
				"reviews": reviews,
				"summary": summary,
			},
		})
	})
}
