package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/service"
)

// BillingHandler exposes invoice endpoints.
type BillingHandler struct {
	billing *service.BillingService
}

// NewBillingHandler constructs handler.
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billingService}
}

// Create handles POST /invoices.
func (h *BillingHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	invoice := req.ToDomain()
	if err := h.billing.CreateInvoice(c.UserContext(), invoice, principal.Account.ID); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewInvoiceResponse(invoice)})
}

// Send handles POST /invoices/:id/send.
func (h *BillingHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.billing.SendInvoice(c.UserContext(), c.Params("id"), principal.Account.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "sent"}})
}

// MarkPaid handles POST /invoices/:id/pay.
func (h *BillingHandler) MarkPaid(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.billing.MarkPaid(c.UserContext(), c.Params("id"), principal.Account.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "paid"}})
}

// Delete handles DELETE /invoices/:id.
func (h *BillingHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.billing.DeleteInvoice(c.UserContext(), c.Params("id"), principal.Account.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /invoices/:id.
func (h *BillingHandler) Get(c *fiber.Ctx) error {
	invoice, err := h.billing.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInvoiceResponse(invoice)})
}

// List handles GET /invoices.
func (h *BillingHandler) List(c *fiber.Ctx) error {
	invoices, err := h.billing.ListInvoices(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, dto.NewInvoiceResponse(&invoices[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
