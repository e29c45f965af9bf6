package domain

import "time"

// InvoiceStatus enumerates billing states.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusSent    InvoiceStatus = "SENT"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

// InvoiceItem is a billable line on an invoice. Amount is hours times rate.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Hours       float64
	Rate        float64
	Amount      float64
}

// Invoice aggregates billable work for a case. Amount equals the sum of
// its item amounts.
type Invoice struct {
	ID        string
	CaseID    string
	ClientID  string
	Amount    float64
	Status    InvoiceStatus
	IssueDate time.Time
	DueDate   time.Time
	Items     []InvoiceItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
