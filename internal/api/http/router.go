package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumalink/profile-service/internal/api/http/handlers"
	"github.com/lumalink/profile-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Verification   *handlers.VerificationHandler
	Profile        *handlers.ProfileHandler
	Pages          *handlers.PageHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// anonymous public profile view
	app.Get("/p/:username", cfg.Profile.GetPublic)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/oauth/callback", cfg.Auth.OAuthCallback)
	authGroup.Get("/verify-email", cfg.Auth.VerifyEmail)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	verification := api.Group("/verification", cfg.AuthMiddleware.Handle)
	verification.Post("/requests", cfg.Verification.Submit)
	verification.Get("/requests/mine", cfg.Verification.ListOwn)
	verification.Get("/requests", auth.RequireAdmin(), cfg.Verification.ListPending)
	verification.Patch("/requests/:id", auth.RequireAdmin(), cfg.Verification.Review)

	api.Get("/templates", cfg.AuthMiddleware.Handle, cfg.Profile.ListTemplates)

	profile := api.Group("/profile", cfg.AuthMiddleware.Handle)
	profile.Get("", cfg.Profile.GetOwn)
	profile.Put("", cfg.Profile.Upsert)
	profile.Put("/social-links", cfg.Profile.SetSocialLinks)
	profile.Get("/pages", cfg.Pages.List)
	profile.Post("/pages", cfg.Pages.Create)
	profile.Put("/pages/order", cfg.Pages.Reorder)
	profile.Put("/pages/:id", cfg.Pages.Update)
	profile.Delete("/pages/:id", cfg.Pages.Delete)
}
