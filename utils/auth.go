package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"skillswap-server/config"
	"skillswap-server/types"
)

var cnicPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidateToken validates a JWT token and returns the user ID
func ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWT.Secret), nil
	})

	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*types.Claims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}

	return claims.UserID, nil
}

// ValidateCnicNumber validates CNIC format (e.g., 12345-1234567-1)
func ValidateCnicNumber(cnic string) bool {
	return cnicPattern.MatchString(cnic)
}

// LocationValid reports whether the create-request location rule holds:
// a location is required unless the swap is remote.
func LocationValid(isRemote bool, location string) bool {
	if isRemote {
		return true
	}
	return strings.TrimSpace(location) != ""
}

// RequestLocation returns the location to store on a swap request.
// Remote swaps carry no location regardless of what was submitted.
func RequestLocation(isRemote bool, location string) string {
	if isRemote {
		return ""
	}
	return strings.TrimSpace(location)
}
