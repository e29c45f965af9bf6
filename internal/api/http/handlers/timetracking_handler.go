package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/service"
)

// TimeTrackingHandler exposes time entry and timesheet endpoints.
type TimeTrackingHandler struct {
	tracking *service.TimeTrackingService
}

// NewTimeTrackingHandler constructs handler.
func NewTimeTrackingHandler(trackingService *service.TimeTrackingService) *TimeTrackingHandler {
	return &TimeTrackingHandler{tracking: trackingService}
}

// CreateEntry handles POST /time/entries.
func (h *TimeTrackingHandler) CreateEntry(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.TimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	entry := req.ToDomain(principal.Account.ID)
	if err := h.tracking.AddEntry(c.UserContext(), entry); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTimeEntryResponse(entry)})
}

// UpdateEntry handles PUT /time/entries/:id.
func (h *TimeTrackingHandler) UpdateEntry(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.TimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	entry := req.ToDomain(principal.Account.ID)
	entry.ID = c.Params("id")
	if err := h.tracking.UpdateEntry(c.UserContext(), entry); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimeEntryResponse(entry)})
}

// DeleteEntry handles DELETE /time/entries/:id.
func (h *TimeTrackingHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.tracking.DeleteEntry(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListEntries handles GET /time/entries with optional from/to filters.
func (h *TimeTrackingHandler) ListEntries(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	from, err := parseTimeQuery(c, "from", time.Time{})
	if err != nil {
		return err
	}
	to, err := parseTimeQuery(c, "to", time.Time{})
	if err != nil {
		return err
	}

	entries, err := h.tracking.ListEntries(c.UserContext(), principal.Account.ID, from, to)
	if err != nil {
		return err
	}

	totals := service.CalculateTotals(entries)
	out := make([]dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.NewTimeEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{
		"data": out,
		"totals": fiber.Map{
			"total_hours":        totals.TotalHours,
			"billable_hours":     totals.BillableHours,
			"non_billable_hours": totals.NonBillableHours,
		},
	})
}

// SubmitTimesheet handles POST /time/timesheets/submit.
func (h *TimeTrackingHandler) SubmitTimesheet(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.SubmitTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sheet, err := h.tracking.SubmitTimesheet(c.UserContext(), principal.Account.ID, req.WeekStart)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTimesheetResponse(sheet)})
}

// GetWeeklyTimesheet handles GET /time/timesheets with a week_start query.
func (h *TimeTrackingHandler) GetWeeklyTimesheet(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	weekStart, err := parseTimeQuery(c, "week_start", time.Time{})
	if err != nil {
		return err
	}
	if weekStart.IsZero() {
		return fiber.NewError(http.StatusBadRequest, "week_start query parameter required")
	}

	sheet, err := h.tracking.GetWeeklyTimesheet(c.UserContext(), principal.Account.ID, weekStart)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimesheetResponse(sheet)})
}

// ApproveTimesheet handles POST /time/timesheets/:id/approve.
func (h *TimeTrackingHandler) ApproveTimesheet(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.tracking.ApproveTimesheet(c.UserContext(), c.Params("id"), principal.Account); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "approved"}})
}

// RejectTimesheet handles POST /time/timesheets/:id/reject.
func (h *TimeTrackingHandler) RejectTimesheet(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.RejectTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.tracking.RejectTimesheet(c.UserContext(), c.Params("id"), req.Reason, principal.Account); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "rejected"}})
}
