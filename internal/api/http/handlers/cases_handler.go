package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/service"
)

// CasesHandler exposes case file CRUD endpoints.
type CasesHandler struct {
	cases *service.CaseService
}

// NewCasesHandler constructs handler.
func NewCasesHandler(caseService *service.CaseService) *CasesHandler {
	return &CasesHandler{cases: caseService}
}

// Create handles POST /cases.
func (h *CasesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	caseFile := req.ToDomain()
	if err := h.cases.OpenCase(c.UserContext(), caseFile, principal.Account.ID); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCaseResponse(caseFile)})
}

// Update handles PUT /cases/:id.
func (h *CasesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	caseFile := req.ToDomain()
	caseFile.ID = c.Params("id")
	if err := h.cases.UpdateCase(c.UserContext(), caseFile, principal.Account.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCaseResponse(caseFile)})
}

// Delete handles DELETE /cases/:id.
func (h *CasesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.cases.DeleteCase(c.UserContext(), c.Params("id"), principal.Account.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /cases/:id.
func (h *CasesHandler) Get(c *fiber.Ctx) error {
	caseFile, err := h.cases.GetCase(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCaseResponse(caseFile)})
}

// List handles GET /cases.
func (h *CasesHandler) List(c *fiber.Ctx) error {
	cases, err := h.cases.ListCases(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, dto.NewCaseResponse(&cases[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
