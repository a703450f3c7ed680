package dto

import "time"

// LoginRequest carries operator credentials for the till.
type LoginRequest struct {
	OperatorID string `json:"operatorID" binding:"required,max=64"`
	PIN        string `json:"pin" binding:"required,min=4,max=72"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
