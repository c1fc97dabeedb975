package routes

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skillswap-server/database"
	"skillswap-server/middleware"
	"skillswap-server/models"
	"skillswap-server/services"
	"skillswap-server/utils"
)

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	jwtService := services.NewJWTService()

	// Register endpoint
	router.POST("/register", func(c *gin.Context) {
		var req struct {
			FirstName       string `json:"first_name" binding:"required,min=2,max=100"`
			LastName        string `json:"last_name" binding:"required,min=2,max=100"`
			Username        string `json:"username" binding:"required,min=3,max=50,alphanum"`
			Email           string `json:"email" binding:"required,email"`
			PhoneNumber     string `json:"phone_number" binding:"required"`
			CnicNumber      string `json:"cnic_number" binding:"required"`
			DateOfBirth     string `json:"date_of_birth" binding:"required"`
			Gender          string `json:"gender" binding:"required,oneof=Male Female"`
			Password        string `json:"password" binding:"required,min=6,max=128"`
			ConfirmPassword string `json:"confirm_password" binding:"required"`
			Location        string `json:"location"`
			AboutMe         string `json:"about_me"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		// Sanitize input
		req.FirstName = middleware.SanitizeInput(req.FirstName)
		req.LastName = middleware.SanitizeInput(req.LastName)
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
		req.CnicNumber = strings.TrimSpace(req.CnicNumber)

		if !utils.ValidateCnicNumber(req.CnicNumber) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid CNIC number",
				"message": "CNIC must be in format XXXXX-XXXXXXX-X",
			})
			return
		}

		dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid date of birth",
				"message": "Date of birth must be in format YYYY-MM-DD",
			})
			return
		}

		// Validate password strength
		isStrong, errors := middleware.ValidatePasswordStrength(req.Password)
		if !isStrong {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Weak password",
				"message": "Password does not meet security requirements",
				"details": errors,
			})
			return
		}

		// Check password confirmation
		if req.Password != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Password mismatch",
				"message": "Passwords do not match",
			})
			return
		}

		// Check unique fields
		var existingUser models.User
		if err := database.DB.Where(
			"username = ? OR email = ? OR phone_number = ? OR cnic_number = ?",
			req.Username, req.Email, req.PhoneNumber, req.CnicNumber,
		).First(&existingUser).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "User already exists",
				"message": "An account with this username, email, phone number or CNIC already exists",
			})
			return
		}

		// Hash password
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Printf("❌ Password hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to process password",
			})
			return
		}

		// Create user
		user := models.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Username:     req.Username,
			Email:        req.Email,
			PhoneNumber:  req.PhoneNumber,
			CnicNumber:   req.CnicNumber,
			DateOfBirth:  dateOfBirth,
			Gender:       models.Gender(req.Gender),
			PasswordHash: hashedPassword,
			Location:     middleware.SanitizeInput(req.Location),
			AboutMe:      middleware.SanitizeInput(req.AboutMe),
		}

		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("❌ User creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to create account",
			})
			return
		}

		// Generate tokens
		deviceID := c.GetHeader("X-Device-ID")
		userAgent := c.GetHeader("User-Agent")
		ipAddress := c.ClientIP()

		tokenPair, err := jwtService.GenerateTokenPair(user.ID, deviceID, userAgent, ipAddress)
		if err != nil {
			log.Printf("❌ Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to generate authentication tokens",
			})
			return
		}

		log.Printf("✅ User registered successfully: %d (%s)", user.ID, user.Username)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Account created successfully",
			"data": gin.H{
				"user":   user,
				"tokens": tokenPair,
			},
		})
	})

	// Login endpoint; the identifier can be a username or an email
	router.POST("/login", func(c *gin.Context) {
		var req struct {
			Identifier string `json:"identifier" binding:"required"`
			Password   string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		req.Identifier = strings.TrimSpace(req.Identifier)

		// Find user by username or email
		var user models.User
		if err := database.DB.Where(
			"username = ? OR email = ?", req.Identifier, strings.ToLower(req.Identifier),
		).First(&user).Error; err != nil {
			log.Printf("❌ User not found: %s", req.Identifier)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Username or password is incorrect",
			})
			return
		}

		if user.IsBanned {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Account banned",
				"message": "Your account has been banned. Contact support.",
			})
			return
		}

		// Verify password
		if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
			log.Printf("❌ Invalid password for user: %d", user.ID)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Username or password is incorrect",
			})
			return
		}

		// Revoke all existing tokens for security
		if err := jwtService.RevokeAllUserTokens(user.ID); err != nil {
			log.Printf("⚠️ Failed to revoke existing tokens for user %d: %v", user.ID, err)
		}

		deviceID := c.GetHeader("X-Device-ID")
		userAgent := c.GetHeader("User-Agent")
		ipAddress := c.ClientIP()

		tokenPair, err := jwtService.GenerateTokenPair(user.ID, deviceID, userAgent, ipAddress)
		if err != nil {
			log.Printf("❌ Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to generate authentication tokens",
			})
			return
		}

		log.Printf("✅ User logged in successfully: %d", user.ID)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"data": gin.H{
				"user":   user,
				"tokens": tokenPair,
			},
		})
	})

	// Refresh token endpoint
	router.POST("/refresh", func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		tokenPair, err := jwtService.RefreshAccessToken(req.RefreshToken)
		if err != nil {
			log.Printf("❌ Token refresh failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid refresh token",
				"message": "Refresh token is invalid or expired",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Token refreshed successfully",
			"data": gin.H{
				"tokens": tokenPair,
			},
		})
	})

	// Logout endpoint
	router.POST("/logout", middleware.AuthMiddleware(), func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req struct {
			RefreshToken string `json:"refresh_token"`
		}

		if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
			if err := jwtService.RevokeRefreshToken(req.RefreshToken); err != nil {
				log.Printf("⚠️ Failed to revoke refresh token: %v", err)
			}
		} else {
			if err := jwtService.RevokeAllUserTokens(userID); err != nil {
				log.Printf("⚠️ Failed to revoke all tokens for user %d: %v", userID, err)
			}
		}

		log.Printf("✅ User logged out: %d", userID)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Logout successful",
		})
	})

	// Get current user endpoint
	router.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := database.DB.Preload("Badges").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "User not found",
				"message": "User not found",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"user": user,
			},
		})
	})
}
