package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/service"
)

// ApprovalsHandler exposes the admin account approval endpoints.
type ApprovalsHandler struct {
	auth *service.AuthService
}

// NewApprovalsHandler constructs handler.
func NewApprovalsHandler(authService *service.AuthService) *ApprovalsHandler {
	return &ApprovalsHandler{auth: authService}
}

// ListPending handles GET /admin/accounts/pending.
func (h *ApprovalsHandler) ListPending(c *fiber.Ctx) error {
	accounts, err := h.auth.ListPendingAccounts(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Approve handles POST /admin/accounts/:id/approve.
func (h *ApprovalsHandler) Approve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.auth.ApproveUser(c.UserContext(), c.Params("id"), principal.Account); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "approved"}})
}

// Reject handles POST /admin/accounts/:id/reject.
func (h *ApprovalsHandler) Reject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.RejectAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.auth.RejectUser(c.UserContext(), c.Params("id"), req.Reason, principal.Account); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "rejected"}})
}
