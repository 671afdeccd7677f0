package domain

import "time"

// VerificationType enumerates what kind of badge is being requested.
type VerificationType string

const (
	VerificationTypeIdentity     VerificationType = "IDENTITY"
	VerificationTypeBusiness     VerificationType = "BUSINESS"
	VerificationTypeSocial       VerificationType = "SOCIAL"
	VerificationTypeCelebrity    VerificationType = "CELEBRITY"
	VerificationTypeOrganization VerificationType = "ORGANIZATION"
)

// VerificationStatus models badge state on both users and requests.
type VerificationStatus string

const (
	VerificationNone     VerificationStatus = "NONE"
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
	VerificationRevoked  VerificationStatus = "REVOKED"
)

// CanTransition reports whether a request may move from its current status
// to the target one. Only PENDING->{APPROVED,REJECTED} and APPROVED->REVOKED
// are legal; REVOKED is terminal.
func (s VerificationStatus) CanTransition(to VerificationStatus) bool {
	switch s {
	case VerificationPending:
		return to == VerificationApproved || to == VerificationRejected
	case VerificationApproved:
		return to == VerificationRevoked
	default:
		return false
	}
}

// ReviewDecision is an admin action taken on a verification request.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "APPROVE"
	DecisionReject  ReviewDecision = "REJECT"
	DecisionRevoke  ReviewDecision = "REVOKE"
)

// TargetStatus maps a decision to the status it produces.
func (d ReviewDecision) TargetStatus() (VerificationStatus, bool) {
	switch d {
	case DecisionApprove:
		return VerificationApproved, true
	case DecisionReject:
		return VerificationRejected, true
	case DecisionRevoke:
		return VerificationRevoked, true
	default:
		return "", false
	}
}

// Evidence is the proof payload submitted with a request, stored as JSONB.
// Which fields are required depends on the requested type.
type Evidence struct {
	DocumentURL    string   `json:"document_url,omitempty"`
	ProfileLinks   []string `json:"profile_links,omitempty"`
	RegistrationNo string   `json:"registration_no,omitempty"`
	Statement      string   `json:"statement,omitempty"`
}

// MissingFields lists evidence fields the given verification type requires
// but the payload does not carry.
func (e Evidence) MissingFields(t VerificationType) []string {
	var missing []string
	switch t {
	case VerificationTypeIdentity, VerificationTypeCelebrity:
		if e.DocumentURL == "" {
			missing = append(missing, "document_url")
		}
	case VerificationTypeBusiness, VerificationTypeOrganization:
		if e.RegistrationNo == "" {
			missing = append(missing, "registration_no")
		}
	case VerificationTypeSocial:
		if len(e.ProfileLinks) == 0 {
			missing = append(missing, "profile_links")
		}
	}
	return missing
}

// VerificationRequest is one submission of proof material for a badge.
type VerificationRequest struct {
	ID          string
	UserID      string
	Type        VerificationType
	Status      VerificationStatus
	Evidence    Evidence
	SubmittedAt time.Time
	ReviewedAt  *time.Time
	ReviewerID  *string
	Notes       *string
}
