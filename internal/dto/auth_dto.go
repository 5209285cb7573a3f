package dto

import (
	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
)

// LoginRequest carries the credential pair plus an optional role constraint:
// the mobile app sends role 1, the admin panel role 3, so a valid password
// alone never grants access to the wrong surface.
type LoginRequest struct {
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
	Role       models.Role `json:"role,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
