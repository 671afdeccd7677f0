package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lumalink/profile-service/internal/api/dto"
	"github.com/lumalink/profile-service/internal/auth"
	"github.com/lumalink/profile-service/internal/service"
	"github.com/lumalink/profile-service/pkg/util"
)

// PageHandler exposes page CRUD for the caller's profile.
type PageHandler struct {
	pages *service.PageService
}

// NewPageHandler constructs handler.
func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{pages: pageService}
}

// List handles GET /api/profile/pages.
func (h *PageHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	pages, err := h.pages.List(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPageResponseList(pages)})
}

// Create handles POST /api/profile/pages.
func (h *PageHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.PageRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	page, err := h.pages.Create(c.Context(), principal.User, service.PageInput{
		Type:      req.Type,
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPageResponse(page)})
}

// Update handles PUT /api/profile/pages/:id.
func (h *PageHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.PageRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	page, err := h.pages.Update(c.Context(), principal.User, c.Params("id"), service.PageInput{
		Type:      req.Type,
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPageResponse(page)})
}

// Delete handles DELETE /api/profile/pages/:id.
func (h *PageHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	if err := h.pages.Delete(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Reorder handles PUT /api/profile/pages/order.
func (h *PageHandler) Reorder(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.PageReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if len(req.OrderedIDs) == 0 {
		return util.NewValidationError("ordered_ids required", nil)
	}

	if err := h.pages.Reorder(c.Context(), principal.User, req.OrderedIDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "reordered"}})
}
