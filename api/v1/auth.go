package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/services"
	"github.com/vodex-console/utils"
)

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	// Authenticate user
	authResponse, err := services.Login(req)
	if err != nil {
		// The message is surfaced verbatim to the operator
		utils.RespondError(c, http.StatusUnauthorized, err.Error())
		return
	}

	// Set token as HttpOnly cookie for clients that prefer cookie auth
	c.SetCookie(
		"access_token",
		authResponse.AccessToken,
		86400, // 24 hours
		"/",
		"",
		true,
		true,
	)

	utils.Respond(c, http.StatusOK, "Login successful", authResponse)
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	// Get user ID from the context (set by the AuthMiddleware)
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := services.GetUser(userID.(string))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "User not found")
		return
	}

	utils.Respond(c, http.StatusOK, "User retrieved successfully", dto.MeResponse{User: *user})
}
