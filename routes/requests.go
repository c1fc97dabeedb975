package routes

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"skillswap-server/database"
	"skillswap-server/middleware"
	"skillswap-server/models"
	"skillswap-server/services"
	"skillswap-server/utils"
)

// lifecycleStatus maps request lifecycle guard errors to HTTP status codes.
// Permission problems are 403, bad state transitions are 400.
func lifecycleStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotParticipant), errors.Is(err, models.ErrNotReceiver):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// isUniqueViolation reports whether err is a Postgres duplicate key error
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// bindingErrors flattens validator errors into per-field messages
func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
		return out
	}
	return []string{err.Error()}
}

// RegisterRequestRoutes registers swap request routes
func RegisterRequestRoutes(router *gin.RouterGroup) {
	// Create a swap request
	router.POST("/requests", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req models.RequestCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": bindingErrors(err),
			})
			return
		}

		if req.ReceiverID == userID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot send a swap request to yourself"})
			return
		}

		if !utils.LocationValid(*req.IsRemote, req.Location) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": []string{"location is required for in-person swaps"},
			})
			return
		}

		var offer models.SkillOffer
		if err := database.DB.First(&offer, req.SkillOfferID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill offer not found"})
			return
		}

		if offer.UserID != req.ReceiverID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Skill offer does not belong to the receiver"})
			return
		}

		var receiver models.User
		if err := database.DB.First(&receiver, req.ReceiverID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
			return
		}

		// Friendly pre-check; the partial unique index on pending requests is
		// what actually enforces this under concurrency.
		var existing models.Request
		if err := database.DB.Where(
			"sender_id = ? AND receiver_id = ? AND skill_offer_id = ? AND status = ?",
			userID, req.ReceiverID, req.SkillOfferID, models.RequestStatusPending,
		).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending request for this skill offer"})
			return
		}

		request := models.Request{
			SenderID:       userID,
			ReceiverID:     req.ReceiverID,
			SkillOfferID:   req.SkillOfferID,
			SkillRequested: middleware.SanitizeInput(req.SkillRequested),
			InitialMessage: middleware.SanitizeInput(req.Message),
			IsRemote:       *req.IsRemote,
			Location:       utils.RequestLocation(*req.IsRemote, middleware.SanitizeInput(req.Location)),
			Status:         models.RequestStatusPending,
		}

		if err := database.DB.Create(&request).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending request for this skill offer"})
				return
			}
			log.Printf("❌ Failed to create swap request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
			return
		}

		var sender models.User
		database.DB.First(&sender, userID)

		services.Notify(req.ReceiverID, &userID, models.NotificationRequestReceived, request.ID,
			fmt.Sprintf("%s requested your skill: %s", sender.Username, offer.FirstSkill()))

		log.Printf("✅ Swap request %d created: user %d -> user %d", request.ID, userID, req.ReceiverID)

		database.DB.Preload("Sender").Preload("Receiver").Preload("SkillOffer").First(&request, request.ID)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Swap request sent",
			"data":    request,
		})
	})

	// List all requests involving the current user, most recently active first
	router.GET("/requests", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var requests []models.Request
		if err := database.DB.
			Preload("Sender").Preload("Receiver").Preload("SkillOffer").
			Where("sender_id = ? OR receiver_id = ?", userID, userID).
			Order("updated_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
	})

	// List requests received by the current user
	router.GET("/requests/received", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var requests []models.Request
		if err := database.DB.
			Preload("Sender").Preload("SkillOffer").
			Where("receiver_id = ?", userID).
			Order("created_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
	})

	// List requests sent by the current user
	router.GET("/requests/sent", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var requests []models.Request
		if err := database.DB.
			Preload("Receiver").Preload("SkillOffer").
			Where("sender_id = ?", userID).
			Order("created_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
	})

	// Get one request with its participants and offer
	router.GET("/requests/:id", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.
			Preload("Sender").Preload("Receiver").Preload("SkillOffer").
			First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if !request.IsParticipant(userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not a participant of this request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
	})

	// Accept a pending request (receiver only)
	router.POST("/requests/:id/accept", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if err := request.Accept(userID); err != nil {
			c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
			return
		}

		if err := database.DB.Save(&request).Error; err != nil {
			log.Printf("❌ Failed to accept request %d: %v", request.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}

		var receiver models.User
		database.DB.First(&receiver, userID)

		services.Notify(request.SenderID, &userID, models.NotificationRequestAccepted, request.ID,
			fmt.Sprintf("%s accepted your swap request!", receiver.Username))

		log.Printf("✅ Request %d accepted by user %d", request.ID, userID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request accepted", "data": request})
	})

	// Reject a pending request (receiver only)
	router.POST("/requests/:id/reject", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if err := request.Reject(userID); err != nil {
			c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
			return
		}

		if err := database.DB.Save(&request).Error; err != nil {
			log.Printf("❌ Failed to reject request %d: %v", request.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}

		var receiver models.User
		database.DB.First(&receiver, userID)

		services.Notify(request.SenderID, &userID, models.NotificationRequestRejected, request.ID,
			fmt.Sprintf("%s declined your swap request", receiver.Username))

		log.Printf("🚫 Request %d rejected by user %d", request.ID, userID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request rejected", "data": request})
	})

	// Cancel a request (either participant, before completion)
	router.POST("/requests/:id/cancel", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if err := request.Cancel(userID); err != nil {
			c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
			return
		}

		if err := database.DB.Save(&request).Error; err != nil {
			log.Printf("❌ Failed to cancel request %d: %v", request.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}

		var actor models.User
		database.DB.First(&actor, userID)

		services.Notify(request.OtherParticipant(userID), &userID, models.NotificationRequestCancelled, request.ID,
			fmt.Sprintf("%s cancelled the swap request", actor.Username))

		log.Printf("🚫 Request %d cancelled by user %d", request.ID, userID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request cancelled", "data": request})
	})

	// Confirm the skill was received. When both sides have confirmed the
	// request completes and both participants earn their first-swap badge.
	router.POST("/requests/:id/confirm-skill-received", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if _, err := request.Confirm(userID); err != nil {
			c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
			return
		}

		// Persist only the caller's flag, then recompute completion from the
		// stored state of both flags so concurrent confirmations cannot
		// clobber each other.
		column := "sender_confirmed_received"
		if request.ReceiverID == userID {
			column = "receiver_confirmed_received"
		}
		res := database.DB.Model(&models.Request{}).
			Where("id = ? AND status = ?", request.ID, models.RequestStatusAccepted).
			Update(column, true)
		if res.Error != nil {
			log.Printf("❌ Failed to confirm request %d: %v", request.ID, res.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}
		if res.RowsAffected == 0 {
			// Lost a race with a cancel; the stored row is no longer accepted
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrNotAccepted.Error()})
			return
		}

		if err := database.DB.First(&request, request.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}

		completed := false
		if request.SenderConfirmedReceived && request.ReceiverConfirmedReceived &&
			request.Status == models.RequestStatusAccepted {
			if err := database.DB.Model(&models.Request{}).
				Where("id = ?", request.ID).
				Update("status", models.RequestStatusCompleted).Error; err != nil {
				log.Printf("❌ Failed to complete request %d: %v", request.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
				return
			}
			request.Status = models.RequestStatusCompleted
			completed = true
		}

		var actor models.User
		database.DB.First(&actor, userID)

		if completed {
			log.Printf("✅ Request %d completed, both sides confirmed", request.ID)

			services.AwardBadge(request.SenderID, "First Swap")
			services.AwardBadge(request.ReceiverID, "First Swap")

			services.Notify(request.OtherParticipant(userID), &userID, models.NotificationSkillConfirmed, request.ID,
				fmt.Sprintf("%s confirmed the swap. Exchange complete!", actor.Username))
		} else {
			services.Notify(request.OtherParticipant(userID), &userID, models.NotificationSkillConfirmed, request.ID,
				fmt.Sprintf("%s confirmed receiving the skill", actor.Username))
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Confirmation recorded", "data": request})
	})

	// Send a chat message within a request
	router.POST("/requests/:id/messages", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if err := request.CanMessage(userID); err != nil {
			c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
			return
		}

		var req models.MessageCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"errors": bindingErrors(err),
			})
			return
		}

		message := models.Message{
			RequestID: request.ID,
			SenderID:  userID,
			Text:      middleware.SanitizeInput(req.Text),
			Timestamp: time.Now(),
		}

		if err := database.DB.Create(&message).Error; err != nil {
			log.Printf("❌ Failed to create message on request %d: %v", request.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		var sender models.User
		database.DB.First(&sender, userID)

		services.Notify(request.OtherParticipant(userID), &userID, models.NotificationMessage, request.ID,
			fmt.Sprintf("New message from %s", sender.Username))

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": message})
	})

	// Read the chat transcript, oldest first
	router.GET("/requests/:id/messages", func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var request models.Request
		if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}

		if !request.IsParticipant(userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not a participant of this request"})
			return
		}

		var messages []models.Message
		if err := database.DB.
			Preload("Sender").
			Where("request_id = ?", request.ID).
			Order("timestamp ASC").
			Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": messages})
	})
}
