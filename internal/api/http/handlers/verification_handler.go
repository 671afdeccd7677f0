package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lumalink/profile-service/internal/api/dto"
	"github.com/lumalink/profile-service/internal/auth"
	"github.com/lumalink/profile-service/internal/service"
	"github.com/lumalink/profile-service/pkg/util"
)

// VerificationHandler exposes badge request endpoints.
type VerificationHandler struct {
	verification *service.VerificationService
}

// NewVerificationHandler constructs handler.
func NewVerificationHandler(verificationService *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verification: verificationService}
}

// Submit handles POST /api/verification/requests.
func (h *VerificationHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.SubmitVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Type == "" {
		return util.NewValidationError("type required", nil)
	}

	created, err := h.verification.Submit(c.Context(), principal.User.ID, req.Type, req.Evidence)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewVerificationResponse(created),
	})
}

// ListOwn handles GET /api/verification/requests/mine.
func (h *VerificationHandler) ListOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	requests, err := h.verification.ListForUser(c.Context(), principal.User.ID)
	if err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewVerificationResponseList(requests)})
}

// ListPending handles GET /api/verification/requests (admin queue).
func (h *VerificationHandler) ListPending(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	requests, err := h.verification.ListPending(c.Context(), limit, offset)
	if err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewVerificationResponseList(requests)})
}

// Review handles PATCH /api/verification/requests/:id (admin).
func (h *VerificationHandler) Review(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.ReviewVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Decision == "" {
		return util.NewValidationError("decision required", nil)
	}

	reviewed, err := h.verification.Review(c.Context(), c.Params("id"), req.Decision, principal.User.ID, req.Notes)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewVerificationResponse(reviewed)})
}
