package domain

import "time"

// UserRole separates profile owners from back-office reviewers.
type UserRole string

const (
	UserRoleMember UserRole = "USER"
	UserRoleAdmin  UserRole = "ADMIN"
)

// SubscriptionTier enumerates plan levels gating templates and features.
type SubscriptionTier string

const (
	TierStarter SubscriptionTier = "STARTER"
	TierRise    SubscriptionTier = "RISE"
	TierBlaze   SubscriptionTier = "BLAZE"
)

// Rank orders tiers so gating checks can compare plans.
func (t SubscriptionTier) Rank() int {
	switch t {
	case TierBlaze:
		return 3
	case TierRise:
		return 2
	case TierStarter:
		return 1
	default:
		return 0
	}
}

// Covers reports whether the tier grants access to features requiring min.
func (t SubscriptionTier) Covers(min SubscriptionTier) bool {
	return t.Rank() >= min.Rank()
}

// User is the account record backing a public profile.
type User struct {
	ID                 string
	Email              string
	Username           *string
	Name               string
	PasswordHash       *string
	OAuthID            *string
	Role               UserRole
	Tier               SubscriptionTier
	IsVerified         bool
	EmailToken         *string
	EmailTokenExpiry   *time.Time
	VerificationStatus VerificationStatus
	HasVerifiedBadge   bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasAuthMethod reports whether at least one login mechanism is set.
// Every completed registration must leave this true.
func (u *User) HasAuthMethod() bool {
	return u.PasswordHash != nil || u.OAuthID != nil
}

// IsAdmin reports whether the user may review verification requests.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
