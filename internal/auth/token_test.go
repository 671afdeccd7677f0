package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumalink/profile-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Email: "ada@example.com",
		Role:  domain.UserRoleMember,
		Tier:  domain.TierRise,
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", 60)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueParseRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("test-secret", 60)
	require.NoError(t, err)

	user := testUser()
	token, exp, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.Tier, claims.Tier)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	tm, err := NewTokenManager("test-secret", 60)
	require.NoError(t, err)
	other, err := NewTokenManager("different-secret", 60)
	require.NoError(t, err)

	token, _, err := other.Issue(testUser())
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm, err := NewTokenManager("test-secret", 60)
	require.NoError(t, err)

	_, err = tm.Parse("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	tm, err := NewTokenManager("test-secret", 60)
	require.NoError(t, err)

	claims := &Claims{
		Email: "ada@example.com",
		Role:  domain.UserRoleMember,
		Tier:  domain.TierStarter,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Parse(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "well formed", header: "Bearer abc123", token: "abc123", ok: true},
		{name: "no scheme", header: "abc123"},
		{name: "empty header", header: ""},
		{name: "lowercase scheme", header: "bearer abc123"},
		{name: "scheme only", header: "Bearer "},
		{name: "extra space", header: "Bearer  abc123"},
		{name: "two token parts", header: "Bearer abc 123"},
		{name: "basic scheme", header: "Basic abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ExtractBearer(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}
