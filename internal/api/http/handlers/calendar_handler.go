package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/dto"
	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/service"
)

// CalendarHandler exposes calendar event endpoints.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendarService}
}

// Create handles POST /calendar/events.
func (h *CalendarHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	event := req.ToDomain()
	if err := h.calendar.ScheduleEvent(c.UserContext(), event, principal.Account.ID); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCalendarEventResponse(event)})
}

// Update handles PUT /calendar/events/:id.
func (h *CalendarHandler) Update(c *fiber.Ctx) error {
	var req dto.CalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	event := req.ToDomain()
	event.ID = c.Params("id")
	if err := h.calendar.UpdateEvent(c.UserContext(), event); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCalendarEventResponse(event)})
}

// Delete handles DELETE /calendar/events/:id.
func (h *CalendarHandler) Delete(c *fiber.Ctx) error {
	if err := h.calendar.DeleteEvent(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /calendar/events/:id.
func (h *CalendarHandler) Get(c *fiber.Ctx) error {
	event, err := h.calendar.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCalendarEventResponse(event)})
}

// List handles GET /calendar/events with optional from/to range filters.
func (h *CalendarHandler) List(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from", time.Time{})
	if err != nil {
		return err
	}
	to, err := parseTimeQuery(c, "to", time.Time{})
	if err != nil {
		return err
	}

	events, err := h.calendar.ListEvents(c.UserContext(), from, to)
	if err != nil {
		return err
	}

	out := make([]dto.CalendarEventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.NewCalendarEventResponse(&events[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

func parseTimeQuery(c *fiber.Ctx, key string, fallback time.Time) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(http.StatusBadRequest, key+" must be RFC 3339")
	}
	return parsed, nil
}
