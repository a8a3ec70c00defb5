package dto

import "time"

// Auth Request DTOs

// LoginRequest contains login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,username"`
	PIN      int    `json:"pin" validate:"required,pin"`
}

// Auth Response DTOs

// SessionResponse contains the session token and the welcome greeting
type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	Welcome   string    `json:"welcome"`
	Account   Profile   `json:"account"`
}

// Profile describes the logged-in account
type Profile struct {
	Owner    string `json:"owner"`
	Username string `json:"username"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}
