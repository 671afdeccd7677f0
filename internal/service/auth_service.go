package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumalink/profile-service/internal/auth"
	"github.com/lumalink/profile-service/internal/config"
	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/events"
	"github.com/lumalink/profile-service/internal/repository"
)

// AuthService coordinates registration, login and account token flows.
type AuthService struct {
	users                repository.UserRepository
	resets               repository.PasswordResetRepository
	dispatcher           events.Dispatcher
	tokenMgr             *auth.TokenManager
	bcryptCost           int
	emailTokenTTL        time.Duration
	resetTTL             time.Duration
	allowUnverifiedLogin bool
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAuthService builds the service. It fails when the signing secret is
// absent, which the caller must treat as fatal.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	tokenMgr, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:                deps.UserRepo,
		resets:               deps.PasswordResetRepo,
		dispatcher:           deps.Dispatcher,
		tokenMgr:             tokenMgr,
		bcryptCost:           cfg.Auth.BcryptCost,
		emailTokenTTL:        time.Duration(cfg.Auth.EmailTokenTTLHours) * time.Hour,
		resetTTL:             time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
		allowUnverifiedLogin: cfg.Auth.AllowUnverifiedLogin,
	}, nil
}

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Username *string
}

// Register creates an account with a hashed password and a one-time email
// confirmation token. No session token is issued; the account can log in
// but stays flagged unverified until the email is confirmed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	emailToken := uuid.NewString()
	expiry := time.Now().Add(s.emailTokenTTL)
	user := &domain.User{
		Email:              input.Email,
		Username:           input.Username,
		Name:               input.Name,
		PasswordHash:       &hash,
		Role:               domain.UserRoleMember,
		Tier:               domain.TierStarter,
		EmailToken:         &emailToken,
		EmailTokenExpiry:   &expiry,
		VerificationStatus: domain.VerificationNone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Email:      user.Email,
		EmailToken: emailToken,
	})
	return user, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password intentionally produce the same error so callers cannot probe
// which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if user.PasswordHash == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := auth.ComparePassword(*user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !user.IsVerified && !s.allowUnverifiedLogin {
		return nil, "", time.Time{}, ErrEmailNotVerified
	}

	token, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// OAuthProfile carries the provider-supplied identity fields.
type OAuthProfile struct {
	SubjectID string
	Email     string
	Name      string
	Username  *string
}

// LoginWithOAuth upserts the account keyed by the provider subject id and
// issues a session token. Provider-created accounts carry no password and
// count as email-verified, since the provider asserts address ownership.
func (s *AuthService) LoginWithOAuth(ctx context.Context, profile OAuthProfile) (*domain.User, string, time.Time, error) {
	oauthID := profile.SubjectID
	user := &domain.User{
		Email:              profile.Email,
		Username:           profile.Username,
		Name:               profile.Name,
		OAuthID:            &oauthID,
		Role:               domain.UserRoleMember,
		Tier:               domain.TierStarter,
		VerificationStatus: domain.VerificationNone,
	}
	if err := s.users.UpsertByOAuthID(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, "", time.Time{}, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, "", time.Time{}, ErrUsernameTaken
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ConfirmEmail redeems a one-time confirmation token. Expired tokens leave
// the account untouched.
func (s *AuthService) ConfirmEmail(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.users.GetByEmailToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if user.EmailTokenExpiry == nil || time.Now().After(*user.EmailTokenExpiry) {
		return nil, ErrTokenExpired
	}

	user.IsVerified = true
	user.EmailToken = nil
	user.EmailTokenExpiry = nil
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEmailVerified, user.ID, nil)
	return user, nil
}

// RequestPasswordReset persists a reset token for the account email. An
// unknown email returns no token and no error, so the endpoint response is
// identical either way and cannot be used to probe registered addresses.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPasswordResetRequested, user.ID, events.PasswordResetRequestedPayload{
		Email:      user.Email,
		ResetToken: token.Token,
	})
	return token, nil
}

// ResetPassword redeems a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidToken
		}
		return err
	}
	if token.UsedAt != nil {
		return ErrInvalidToken
	}
	if time.Now().After(token.ExpiresAt) {
		return ErrTokenExpired
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	return s.resets.MarkUsed(ctx, token.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
