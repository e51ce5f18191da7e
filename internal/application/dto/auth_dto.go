package dto

import "time"

// TokenResponse salida de POST /auth/token.
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
}
