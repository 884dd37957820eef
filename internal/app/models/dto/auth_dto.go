package dto

import "time"

// RegisterRequest is the body for member registration
type RegisterRequest struct {
	Username    string    `json:"username" binding:"required,min=3,max=30" example:"lisa"`
	Password    string    `json:"password" binding:"required,min=8" example:"Pa55w.rd"`
	Gender      string    `json:"gender" binding:"required,oneof=male female" example:"female"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required"`
	KnownAs     string    `json:"knownAs" binding:"required" example:"Lisa"`
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
}

// LoginRequest is the body for member login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"lisa"`
	Password string `json:"password" binding:"required" example:"Pa55w.rd"`
}

// RefreshTokenRequest is the body for refreshing an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries the issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}

// AuthResponse pairs the token pair with the logged-in member summary
type AuthResponse struct {
	Tokens TokenResponse          `json:"tokens"`
	Member MemberListItemResponse `json:"member"`
}
