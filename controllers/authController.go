package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/store"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInternalServerError   = "Internal server error"
	msgFailedToGenerateToken = "failed to generate token"
	msgLoggedOut             = "Logged out successfully"
	msgProfileUpdated        = "Profile updated successfully!"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondStoreError maps the store's error kinds onto HTTP statuses.
func respondStoreError(ctx *gin.Context, err error) {
	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	var preconditionErr *store.PreconditionError

	switch {
	case errors.As(err, &validationErr):
		sendErrorResponse(ctx, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		sendErrorResponse(ctx, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &preconditionErr):
		sendErrorResponse(ctx, http.StatusConflict, preconditionErr.Message)
	default:
		log.Println("Store error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

func generateSessionToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func respondWithSession(ctx *gin.Context, status int, user models.User) {
	tokenString, err := generateSessionToken(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}
	sendJSONResponse(ctx, status, gin.H{"user": user, "token": tokenString})
}

// Login activates the demo identity for the supplied email.
func Login(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := s.Login(loginData.Email, loginData.Password)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		respondWithSession(ctx, http.StatusOK, user)
	}
}

// Signup creates a fresh demo identity.
func Signup(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signupData models.SignupData
		if err := ctx.ShouldBindJSON(&signupData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := s.Signup(signupData)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		respondWithSession(ctx, http.StatusCreated, user)
	}
}

// Logout clears the active session. It always succeeds.
func Logout(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s.Logout()
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
	}
}

// UpdateProfile overwrites the active user's profile fields.
func UpdateProfile(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var fields models.ProfileUpdate
		if err := ctx.ShouldBindJSON(&fields); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := s.UpdateProfile(fields)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgProfileUpdated, "user": user})
	}
}

// GetDashboard returns the active user's profile and counters.
func GetDashboard(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			sendErrorResponse(ctx, http.StatusConflict, "no active session")
			return
		}

		stats, err := s.DashboardStats()
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user, "stats": stats})
	}
}
