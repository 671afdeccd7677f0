package dto

import (
	"time"

	"github.com/lumalink/profile-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Username *string `json:"username,omitempty"`
}

// LoginRequest payload for password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest asks for a reset token by email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirm redeems a reset token.
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the safe user projection returned to clients.
type UserResponse struct {
	ID                 string                    `json:"id"`
	Email              string                    `json:"email"`
	Username           *string                   `json:"username,omitempty"`
	Name               string                    `json:"name"`
	Tier               domain.SubscriptionTier   `json:"tier"`
	IsVerified         bool                      `json:"is_verified"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	HasVerifiedBadge   bool                      `json:"has_verified_badge"`
}

// NewUserResponse projects a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email,
		Username:           user.Username,
		Name:               user.Name,
		Tier:               user.Tier,
		IsVerified:         user.IsVerified,
		VerificationStatus: user.VerificationStatus,
		HasVerifiedBadge:   user.HasVerifiedBadge,
	}
}
