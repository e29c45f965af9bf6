package domain

import "time"

// CaseStatus enumerates case lifecycle states.
type CaseStatus string

const (
	CaseStatusActive  CaseStatus = "ACTIVE"
	CaseStatusPending CaseStatus = "PENDING"
	CaseStatusClosed  CaseStatus = "CLOSED"
)

// CasePriority enumerates case urgency.
type CasePriority string

const (
	CasePriorityHigh   CasePriority = "HIGH"
	CasePriorityMedium CasePriority = "MEDIUM"
	CasePriorityLow    CasePriority = "LOW"
)

// CaseFile is the aggregate for a legal matter.
type CaseFile struct {
	ID               string
	Title            string
	CaseNumber       string
	ClientID         string
	Status           CaseStatus
	Priority         CasePriority
	PracticeArea     string
	AssignedAttorney string
	Description      string
	OpenDate         time.Time
	DueDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
