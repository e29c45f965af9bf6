package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/repository"
)

// AuditHandler exposes read access to the audit trail.
type AuditHandler struct {
	audit repository.AuditRepository
}

// NewAuditHandler constructs handler.
func NewAuditHandler(auditRepo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{audit: auditRepo}
}

type auditRecordResponse struct {
	ID          string                 `json:"id"`
	EntityType  domain.AuditEntityType `json:"entity_type"`
	EntityID    string                 `json:"entity_id"`
	Action      string                 `json:"action"`
	PerformedBy string                 `json:"performed_by"`
	Details     map[string]any         `json:"details,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// List handles GET /audit. With entity_type and entity_id it returns that
// entity's trail; otherwise the most recent records.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")

	var (
		records []domain.AuditRecord
		err     error
	)
	switch {
	case entityType != "" && entityID != "":
		records, err = h.audit.ListByEntity(c.UserContext(), domain.AuditEntityType(entityType), entityID)
	case entityType != "" || entityID != "":
		return fiber.NewError(http.StatusBadRequest, "entity_type and entity_id must be supplied together")
	default:
		limit, _ := strconv.Atoi(c.Query("limit", "100"))
		records, err = h.audit.ListRecent(c.UserContext(), limit)
	}
	if err != nil {
		return err
	}

	out := make([]auditRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, auditRecordResponse{
			ID:          record.ID,
			EntityType:  record.EntityType,
			EntityID:    record.EntityID,
			Action:      record.Action,
			PerformedBy: record.PerformedBy,
			Details:     record.Details,
			CreatedAt:   record.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}
