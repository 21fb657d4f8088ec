package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest carries a registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest carries a login payload.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserResponse is the outward shape of an account.
type UserResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// LoginResponse returns the identity together with its bearer token.
type LoginResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
