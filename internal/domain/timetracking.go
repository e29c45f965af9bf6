package domain

import "time"

// TimeEntryCategory classifies tracked time.
type TimeEntryCategory string

const (
	TimeEntryCategoryBillable       TimeEntryCategory = "BILLABLE"
	TimeEntryCategoryNonBillable    TimeEntryCategory = "NON_BILLABLE"
	TimeEntryCategoryAdministrative TimeEntryCategory = "ADMINISTRATIVE"
)

// TimesheetStatus enumerates the weekly timesheet workflow.
type TimesheetStatus string

const (
	TimesheetStatusDraft     TimesheetStatus = "DRAFT"
	TimesheetStatusSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetStatusApproved  TimesheetStatus = "APPROVED"
	TimesheetStatusRejected  TimesheetStatus = "REJECTED"
)

// TimeEntry records a block of worked time. DurationMinutes is the tracked
// span net of breaks.
type TimeEntry struct {
	ID              string
	AccountID       string
	Date            time.Time
	StartTime       string
	EndTime         string
	DurationMinutes int
	CaseID          *string
	ClientID        *string
	Description     string
	Billable        bool
	Rate            float64
	Category        TimeEntryCategory
	ActivityCode    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Timesheet is a weekly roll-up of time entries with its own
// submit/approve/reject workflow.
type Timesheet struct {
	ID               string
	AccountID        string
	WeekStartDate    time.Time
	WeekEndDate      time.Time
	TotalHours       float64
	BillableHours    float64
	NonBillableHours float64
	Status           TimesheetStatus
	SubmittedAt      *time.Time
	ApprovedAt       *time.Time
	ApprovedBy       *string
	Comments         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TimeTotals is the reduction over a set of time entries.
type TimeTotals struct {
	TotalHours       float64
	BillableHours    float64
	NonBillableHours float64
}

// ActivityCodes lists the firm's standard activity classifications.
var ActivityCodes = map[string]string{
	"MEET":     "Client Meetings",
	"RESEARCH": "Legal Research",
	"DOC":      "Document Preparation",
	"COURT":    "Court Appearances",
	"ADMIN":    "Administrative Tasks",
	"CONSULT":  "Client Consultation",
	"REVIEW":   "Document Review",
	"DRAFT":    "Draft Legal Documents",
	"NEGOT":    "Negotiations",
	"TRAVEL":   "Travel Time",
}
