package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/service"
)

// SettingsHandler exposes firm settings endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settingsService}
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settings.GetSettings(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFirmSettingsResponse(settings)})
}

// Update handles PUT /settings.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.FirmSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	settings := req.ToDomain()
	if err := h.settings.UpdateSettings(c.UserContext(), settings, principal.Account); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFirmSettingsResponse(settings)})
}

// GetPasswordPolicy handles GET /settings/password-policy.
func (h *SettingsHandler) GetPasswordPolicy(c *fiber.Ctx) error {
	policy, err := h.settings.GetPasswordPolicy(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPasswordPolicyResponse(policy)})
}

// UpdatePasswordPolicy handles PUT /settings/password-policy.
func (h *SettingsHandler) UpdatePasswordPolicy(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.PasswordPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	policy := req.ToDomain()
	if err := h.settings.UpdatePasswordPolicy(c.UserContext(), policy, principal.Account); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPasswordPolicyResponse(policy)})
}
