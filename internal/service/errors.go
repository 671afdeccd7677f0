package service

import (
	"net/http"

	"github.com/lumalink/profile-service/pkg/util"
)

// Workflow error taxonomy. These are shared sentinels so callers can use
// errors.Is and the HTTP boundary maps each to a stable status code.
var (
	ErrEmailTaken         = util.NewConflict("EMAIL_TAKEN", "email already registered")
	ErrUsernameTaken      = util.NewConflict("USERNAME_TAKEN", "username already taken")
	ErrInvalidCredentials = util.NewUnauthorized("invalid credentials")
	ErrEmailNotVerified   = util.NewUnauthorized("email address not verified")

	// ErrInvalidToken and ErrTokenExpired cover one-time email and
	// password-reset tokens; session tokens are handled in internal/auth.
	ErrInvalidToken = util.NewDomainError("INVALID_TOKEN", "invalid or unknown token", http.StatusBadRequest, nil)
	ErrTokenExpired = util.NewGone("TOKEN_EXPIRED", "token expired")

	ErrPendingRequestExists = util.NewConflict("VERIFICATION_PENDING", "a verification request is already pending")
	ErrInvalidTransition    = util.NewConflict("INVALID_TRANSITION", "verification request cannot move to that status")

	ErrSlugTaken          = util.NewConflict("SLUG_TAKEN", "page slug already used on this profile")
	ErrTemplateTierLocked = util.NewForbidden("template requires a higher subscription tier")
	ErrNotPageOwner       = util.NewForbidden("page belongs to another profile")
)
