package auth

import (
	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/pkg/util"

	"github.com/gofiber/fiber/v2"
)

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return util.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller holds the ADMIN role. Verification
// reviews are admin-only; the workflow itself assumes this check already
// happened.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if principal.User == nil || principal.User.Role != domain.UserRoleAdmin {
			return util.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// RequireTier ensures the caller's plan covers the given tier.
func RequireTier(min domain.SubscriptionTier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !principal.User.Tier.Covers(min) {
			return util.NewForbidden("plan upgrade required")
		}
		return c.Next()
	}
}
