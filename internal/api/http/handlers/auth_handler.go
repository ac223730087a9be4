package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ticketflow/ticketflow/internal/api/dto"
	"github.com/ticketflow/ticketflow/internal/notify"
	"github.com/ticketflow/ticketflow/internal/service"
	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// AuthHandler exposes the login, signup and logout flows.
type AuthHandler struct {
	auth     *service.AuthService
	notifier *notify.Notifier
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, notifier *notify.Notifier) *AuthHandler {
	return &AuthHandler{auth: authService, notifier: notifier}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	next, err := h.auth.Signup(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": stateResponse(next, h.notifier)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	next, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stateResponse(next, h.notifier)})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	next := h.auth.Logout(c.UserContext())
	return c.JSON(fiber.Map{"data": stateResponse(next, h.notifier)})
}

// LastEmail handles GET /api/auth/last-email.
func (h *AuthHandler) LastEmail(c *fiber.Ctx) error {
	resp := dto.LastEmailResponse{}
	if email, ok := h.auth.LastEmail(c.UserContext()); ok {
		resp.Email = &email
	}
	return c.JSON(fiber.Map{"data": resp})
}
