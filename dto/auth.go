package dto

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/vodex-console/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the data payload returned by /auth/login.
type AuthResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// MeResponse is the data payload returned by /auth/me.
type MeResponse struct {
	User models.User `json:"user"`
}
