package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// TimeEntryRequest payload for recording or updating a time entry.
type TimeEntryRequest struct {
	Date         time.Time                `json:"date"`
	StartTime    string                   `json:"start_time"`
	EndTime      string                   `json:"end_time"`
	Duration     int                      `json:"duration_minutes"`
	CaseID       *string                  `json:"case_id"`
	ClientID     *string                  `json:"client_id"`
	Description  string                   `json:"description"`
	Billable     bool                     `json:"billable"`
	Rate         float64                  `json:"rate"`
	Category     domain.TimeEntryCategory `json:"category"`
	ActivityCode string                   `json:"activity_code"`
}

// ToDomain converts the request into a domain time entry for the given
// account.
func (r TimeEntryRequest) ToDomain(accountID string) *domain.TimeEntry {
	return &domain.TimeEntry{
		AccountID:       accountID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.Duration,
		CaseID:          r.CaseID,
		ClientID:        r.ClientID,
		Description:     r.Description,
		Billable:        r.Billable,
		Rate:            r.Rate,
		Category:        r.Category,
		ActivityCode:    r.ActivityCode,
	}
}

// TimeEntryResponse response.
type TimeEntryResponse struct {
	ID           string                   `json:"id"`
	AccountID    string                   `json:"account_id"`
	Date         time.Time                `json:"date"`
	StartTime    string                   `json:"start_time"`
	EndTime      string                   `json:"end_time"`
	Duration     int                      `json:"duration_minutes"`
	CaseID       *string                  `json:"case_id,omitempty"`
	ClientID     *string                  `json:"client_id,omitempty"`
	Description  string                   `json:"description"`
	Billable     bool                     `json:"billable"`
	Rate         float64                  `json:"rate"`
	Category     domain.TimeEntryCategory `json:"category"`
	ActivityCode string                   `json:"activity_code"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// NewTimeEntryResponse maps a domain time entry.
func NewTimeEntryResponse(entry *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           entry.ID,
		AccountID:    entry.AccountID,
		Date:         entry.Date,
		StartTime:    entry.StartTime,
		EndTime:      entry.EndTime,
		Duration:     entry.DurationMinutes,
		CaseID:       entry.CaseID,
		ClientID:     entry.ClientID,
		Description:  entry.Description,
		Billable:     entry.Billable,
		Rate:         entry.Rate,
		Category:     entry.Category,
		ActivityCode: entry.ActivityCode,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}

// SubmitTimesheetRequest payload.
type SubmitTimesheetRequest struct {
	WeekStart time.Time `json:"week_start"`
}

// RejectTimesheetRequest payload.
type RejectTimesheetRequest struct {
	Reason string `json:"reason"`
}

// TimesheetResponse response.
type TimesheetResponse struct {
	ID               string                 `json:"id"`
	AccountID        string                 `json:"account_id"`
	WeekStartDate    time.Time              `json:"week_start_date"`
	WeekEndDate      time.Time              `json:"week_end_date"`
	TotalHours       float64                `json:"total_hours"`
	BillableHours    float64                `json:"billable_hours"`
	NonBillableHours float64                `json:"non_billable_hours"`
	Status           domain.TimesheetStatus `json:"status"`
	SubmittedAt      *time.Time             `json:"submitted_at,omitempty"`
	ApprovedAt       *time.Time             `json:"approved_at,omitempty"`
	ApprovedBy       *string                `json:"approved_by,omitempty"`
	Comments         *string                `json:"comments,omitempty"`
}

// NewTimesheetResponse maps a domain timesheet.
func NewTimesheetResponse(sheet *domain.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:               sheet.ID,
		AccountID:        sheet.AccountID,
		WeekStartDate:    sheet.WeekStartDate,
		WeekEndDate:      sheet.WeekEndDate,
		TotalHours:       sheet.TotalHours,
		BillableHours:    sheet.BillableHours,
		NonBillableHours: sheet.NonBillableHours,
		Status:           sheet.Status,
		SubmittedAt:      sheet.SubmittedAt,
		ApprovedAt:       sheet.ApprovedAt,
		ApprovedBy:       sheet.ApprovedBy,
		Comments:         sheet.Comments,
	}
}
