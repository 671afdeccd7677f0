package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationStatusTransitions(t *testing.T) {
	tests := []struct {
		from    VerificationStatus
		to      VerificationStatus
		allowed bool
	}{
		{VerificationPending, VerificationApproved, true},
		{VerificationPending, VerificationRejected, true},
		{VerificationApproved, VerificationRevoked, true},
		{VerificationPending, VerificationRevoked, false},
		{VerificationApproved, VerificationRejected, false},
		{VerificationRejected, VerificationApproved, false},
		{VerificationRevoked, VerificationApproved, false},
		{VerificationRevoked, VerificationPending, false},
		{VerificationNone, VerificationApproved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestEvidenceMissingFields(t *testing.T) {
	assert.Empty(t, Evidence{DocumentURL: "https://x/doc"}.MissingFields(VerificationTypeIdentity))
	assert.Equal(t, []string{"document_url"}, Evidence{}.MissingFields(VerificationTypeCelebrity))
	assert.Equal(t, []string{"registration_no"}, Evidence{}.MissingFields(VerificationTypeBusiness))
	assert.Equal(t, []string{"profile_links"}, Evidence{}.MissingFields(VerificationTypeSocial))
	assert.Empty(t, Evidence{ProfileLinks: []string{"https://x/@me"}}.MissingFields(VerificationTypeSocial))
}

func TestTierCovers(t *testing.T) {
	assert.True(t, TierBlaze.Covers(TierStarter))
	assert.True(t, TierRise.Covers(TierRise))
	assert.False(t, TierStarter.Covers(TierRise))
}
