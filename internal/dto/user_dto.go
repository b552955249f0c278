package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserDTO struct {
	Id              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	ListingLimit    int       `json:"listing_limit"`
	AvatarURL       string    `json:"avatar_url"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=3"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio       string `json:"bio,omitempty"`
}

// --- Change Request DTOs ---

type RequestEmailChangeRequest struct {
	NewEmail string `json:"new_email" validate:"required,email"`
}

type RequestPasswordChangeRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ConfirmChangeRequest struct {
	Token string `json:"token" validate:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ChangeRequestResponse struct {
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`
}
