package domain

import "time"

// AuditEntityType names the record kinds tracked in the audit log.
type AuditEntityType string

const (
	AuditEntityAccount   AuditEntityType = "ACCOUNT"
	AuditEntityClient    AuditEntityType = "CLIENT"
	AuditEntityCase      AuditEntityType = "CASE"
	AuditEntityDocument  AuditEntityType = "DOCUMENT"
	AuditEntityInvoice   AuditEntityType = "INVOICE"
	AuditEntityTimesheet AuditEntityType = "TIMESHEET"
)

// AuditRecord is an append-only entry describing a state change or a
// verification outcome.
type AuditRecord struct {
	ID          string
	EntityType  AuditEntityType
	EntityID    string
	Action      string
	PerformedBy string
	Details     map[string]any
	CreatedAt   time.Time
}
