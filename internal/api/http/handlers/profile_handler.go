package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumalink/profile-service/internal/api/dto"
	"github.com/lumalink/profile-service/internal/auth"
	"github.com/lumalink/profile-service/internal/service"
	"github.com/lumalink/profile-service/pkg/util"
)

// ProfileHandler exposes the owner profile surface and the public view.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// GetOwn handles GET /api/profile.
func (h *ProfileHandler) GetOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	profile, err := h.profiles.GetOwn(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// Upsert handles PUT /api/profile.
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.DisplayName == "" {
		return util.NewValidationError("display_name required", nil)
	}

	profile, err := h.profiles.Upsert(c.Context(), principal.User, service.ProfileInput{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		TemplateID:  req.TemplateID,
		Published:   req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// SetSocialLinks handles PUT /api/profile/social-links.
func (h *ProfileHandler) SetSocialLinks(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.SocialLinksRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	inputs := make([]service.SocialLinkInput, 0, len(req.Links))
	for _, link := range req.Links {
		inputs = append(inputs, service.SocialLinkInput{Platform: link.Platform, URL: link.URL})
	}

	links, err := h.profiles.SetSocialLinks(c.Context(), principal.User, inputs)
	if err != nil {
		return err
	}

	out := make([]dto.SocialLinkEntry, 0, len(links))
	for _, link := range links {
		out = append(out, dto.SocialLinkEntry{Platform: link.Platform, URL: link.URL})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"links": out}})
}

// ListTemplates handles GET /api/templates.
func (h *ProfileHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.profiles.ListTemplates(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	out := make([]dto.TemplateResponse, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, dto.TemplateResponse{
			ID:         tmpl.ID,
			Name:       tmpl.Name,
			PreviewURL: tmpl.PreviewURL,
			MinTier:    tmpl.MinTier,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetPublic handles GET /p/:username — the anonymous public profile view.
func (h *ProfileHandler) GetPublic(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return util.NewValidationError("username required", nil)
	}

	public, err := h.profiles.GetPublic(c.Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": public})
}
