package events

import (
	"time"

	"github.com/lumalink/profile-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventEmailVerified          EventType = "email_verified"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventVerificationSubmitted  EventType = "verification_submitted"
	EventVerificationReviewed   EventType = "verification_reviewed"
	EventProfilePublished       EventType = "profile_published"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email      string `json:"email"`
	EmailToken string `json:"email_token"`
}

// PasswordResetRequestedPayload payload.
type PasswordResetRequestedPayload struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// VerificationSubmittedPayload payload.
type VerificationSubmittedPayload struct {
	RequestID string                  `json:"request_id"`
	Type      domain.VerificationType `json:"type"`
}

// VerificationReviewedPayload payload.
type VerificationReviewedPayload struct {
	RequestID string                    `json:"request_id"`
	Decision  domain.ReviewDecision     `json:"decision"`
	Status    domain.VerificationStatus `json:"status"`
}
