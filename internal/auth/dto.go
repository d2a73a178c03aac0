package auth

import (
	"github.com/resumehub/resumehub-backend/internal/users"
)

// RegisterRequest carries the credential payload for account creation.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest carries the credential payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register, login and the OAuth callback. The
// token is additionally issued as an HTTP-only cookie by the controller.
type AuthResponse struct {
	User      users.DTO `json:"user"`
	Token     string    `json:"token"`
	ExpiresIn int       `json:"expiresIn"`
}
