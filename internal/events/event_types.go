package events

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered          EventType = "account_registered"
	EventAccountApproved            EventType = "account_approved"
	EventAccountRejected            EventType = "account_rejected"
	EventDocumentVerified           EventType = "document_verified"
	EventDocumentVerificationFailed EventType = "document_verification_failed"
	EventInvoiceIssued              EventType = "invoice_issued"
	EventCalendarEventScheduled     EventType = "calendar_event_scheduled"
	EventTimesheetSubmitted         EventType = "timesheet_submitted"
	EventTimesheetResolved          EventType = "timesheet_resolved"
)

// Severity tags a notification outcome.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Email string             `json:"email"`
	Role  domain.AccountRole `json:"role"`
}

// AccountApprovedPayload payload.
type AccountApprovedPayload struct {
	Email      string `json:"email"`
	ApprovedBy string `json:"approved_by"`
}

// AccountRejectedPayload payload.
type AccountRejectedPayload struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// DocumentVerifiedPayload payload.
type DocumentVerifiedPayload struct {
	DocumentID    string   `json:"document_id"`
	IsValid       bool     `json:"is_valid"`
	Discrepancies []string `json:"discrepancies,omitempty"`
}

// InvoiceIssuedPayload payload.
type InvoiceIssuedPayload struct {
	CaseID   string  `json:"case_id"`
	ClientID string  `json:"client_id"`
	Amount   float64 `json:"amount"`
}

// CalendarEventScheduledPayload payload.
type CalendarEventScheduledPayload struct {
	Title string           `json:"title"`
	Type  domain.EventType `json:"type"`
	Start time.Time        `json:"start"`
}

// TimesheetResolvedPayload payload.
type TimesheetResolvedPayload struct {
	AccountID string                 `json:"account_id"`
	Status    domain.TimesheetStatus `json:"status"`
	Comments  string                 `json:"comments,omitempty"`
}
