package dto

import (
	"time"

	"github.com/lumalink/profile-service/internal/domain"
)

// SubmitVerificationRequest payload for badge submissions.
type SubmitVerificationRequest struct {
	Type     domain.VerificationType `json:"type"`
	Evidence domain.Evidence         `json:"evidence"`
}

// ReviewVerificationRequest payload for admin decisions.
type ReviewVerificationRequest struct {
	Decision domain.ReviewDecision `json:"decision"`
	Notes    string                `json:"notes,omitempty"`
}

// VerificationResponse projects a verification request.
type VerificationResponse struct {
	ID          string                    `json:"id"`
	UserID      string                    `json:"user_id"`
	Type        domain.VerificationType   `json:"type"`
	Status      domain.VerificationStatus `json:"status"`
	Evidence    domain.Evidence           `json:"evidence"`
	SubmittedAt time.Time                 `json:"submitted_at"`
	ReviewedAt  *time.Time                `json:"reviewed_at,omitempty"`
	Notes       *string                   `json:"notes,omitempty"`
}

// NewVerificationResponse projects a domain request.
func NewVerificationResponse(req *domain.VerificationRequest) VerificationResponse {
	return VerificationResponse{
		ID:          req.ID,
		UserID:      req.UserID,
		Type:        req.Type,
		Status:      req.Status,
		Evidence:    req.Evidence,
		SubmittedAt: req.SubmittedAt,
		ReviewedAt:  req.ReviewedAt,
		Notes:       req.Notes,
	}
}

// NewVerificationResponseList projects a slice of requests.
func NewVerificationResponseList(reqs []domain.VerificationRequest) []VerificationResponse {
	out := make([]VerificationResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, NewVerificationResponse(&reqs[i]))
	}
	return out
}
