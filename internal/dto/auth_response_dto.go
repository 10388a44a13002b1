package dto

import "time"

// LoginResponse is returned on successful authentication. The refresh token
// travels separately in an HttpOnly cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
