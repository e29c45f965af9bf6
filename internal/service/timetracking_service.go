package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// Postgres class 23 code raised by the unique index on (account, week).
const uniqueViolationCode = "23505"

// TimeTrackingService coordinates time entries and the weekly timesheet
// workflow.
type TimeTrackingService struct {
	entries    repository.TimeEntryRepository
	timesheets repository.TimesheetRepository
	audit      repository.AuditRepository
	dispatcher events.Dispatcher
}

// TimeTrackingDependencies bundles collaborators for the service.
type TimeTrackingDependencies struct {
	EntryRepo     repository.TimeEntryRepository
	TimesheetRepo repository.TimesheetRepository
	AuditRepo     repository.AuditRepository
	Dispatcher    events.Dispatcher
}

// NewTimeTrackingService constructs the service.
func NewTimeTrackingService(deps TimeTrackingDependencies) *TimeTrackingService {
	return &TimeTrackingService{
		entries:    deps.EntryRepo,
		timesheets: deps.TimesheetRepo,
		audit:      deps.AuditRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CalculateTotals reduces time entries into hour totals. Hours are
// duration minutes over sixty; billable and non-billable split on the
// entry's billable flag.
func CalculateTotals(entries []domain.TimeEntry) domain.TimeTotals {
	var totals domain.TimeTotals
	for _, entry := range entries {
		hours := float64(entry.DurationMinutes) / 60
		totals.TotalHours += hours
		if entry.Billable {
			totals.BillableHours += hours
		} else {
			totals.NonBillableHours += hours
		}
	}
	return totals
}

// AddEntry validates and stores a tracked time entry.
func (s *TimeTrackingService) AddEntry(ctx context.Context, entry *domain.TimeEntry) error {
	if entry.DurationMinutes <= 0 {
		return apperrors.NewValidationError("duration must be positive", nil)
	}
	if strings.TrimSpace(entry.Description) == "" {
		return apperrors.NewValidationError("description required", nil)
	}
	if entry.ActivityCode != "" {
		if _, ok := domain.ActivityCodes[entry.ActivityCode]; !ok {
			return apperrors.NewValidationError("unknown activity code", map[string]any{"code": entry.ActivityCode})
		}
	}
	if entry.Category == "" {
		if entry.Billable {
			entry.Category = domain.TimeEntryCategoryBillable
		} else {
			entry.Category = domain.TimeEntryCategoryNonBillable
		}
	}
	return s.entries.Create(ctx, entry)
}

// UpdateEntry replaces a time entry.
func (s *TimeTrackingService) UpdateEntry(ctx context.Context, entry *domain.TimeEntry) error {
	if err := s.entries.Update(ctx, entry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("time entry", map[string]any{"id": entry.ID})
		}
		return err
	}
	return nil
}

// DeleteEntry removes a time entry.
func (s *TimeTrackingService) DeleteEntry(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("time entry", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// ListEntries returns an account's entries within [from, to). Omitted
// bounds leave that side of the range open.
func (s *TimeTrackingService) ListEntries(ctx context.Context, accountID string, from, to time.Time) ([]domain.TimeEntry, error) {
	from, to = openRange(from, to)
	return s.entries.ListByAccountRange(ctx, accountID, from, to)
}

// openRange widens omitted endpoints so a missing filter matches every
// row. A zero lower bound already precedes any stored date; a zero upper
// bound would otherwise exclude everything.
func openRange(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return from, to
}

// SubmitTimesheet rolls the week's entries into a SUBMITTED timesheet,
// computing its totals from the stored entries.
func (s *TimeTrackingService) SubmitTimesheet(ctx context.Context, accountID string, weekStart time.Time) (*domain.Timesheet, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	entries, err := s.entries.ListByAccountRange(ctx, accountID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	totals := CalculateTotals(entries)
	now := time.Now()
	sheet := &domain.Timesheet{
		AccountID:        accountID,
		WeekStartDate:    weekStart,
		WeekEndDate:      weekEnd,
		TotalHours:       totals.TotalHours,
		BillableHours:    totals.BillableHours,
		NonBillableHours: totals.NonBillableHours,
		Status:           domain.TimesheetStatusSubmitted,
		SubmittedAt:      &now,
	}
	if err := s.timesheets.Create(ctx, sheet); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.NewConflict("timesheet already submitted for this week", map[string]any{
				"account_id": accountID,
				"week_start": weekStart,
			})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTimesheetSubmitted,
		EntityID: sheet.ID,
		ActorID:  accountID,
		Payload: events.TimesheetResolvedPayload{
			AccountID: accountID,
			Status:    sheet.Status,
		},
	})
	return sheet, nil
}

// ApproveTimesheet stamps the approver and time. Admin only.
func (s *TimeTrackingService) ApproveTimesheet(ctx context.Context, id string, acting *domain.Account) error {
	if !acting.IsAdmin() {
		return domain.ErrUnauthorized
	}
	sheet, err := s.getTimesheet(ctx, id)
	if err != nil {
		return err
	}
	if err := s.timesheets.SetApproved(ctx, id, acting.ID, time.Now()); err != nil {
		return err
	}

	s.recordAudit(ctx, id, "approve", acting.ID)
	s.publish(ctx, events.Event{
		Type:     events.EventTimesheetResolved,
		EntityID: id,
		ActorID:  acting.ID,
		Payload: events.TimesheetResolvedPayload{
			AccountID: sheet.AccountID,
			Status:    domain.TimesheetStatusApproved,
		},
	})
	return nil
}

// RejectTimesheet records the rejection comments. Admin only; the reason
// is required.
func (s *TimeTrackingService) RejectTimesheet(ctx context.Context, id, reason string, acting *domain.Account) error {
	if !acting.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(reason) == "" {
		return apperrors.NewValidationError("rejection reason required", nil)
	}
	sheet, err := s.getTimesheet(ctx, id)
	if err != nil {
		return err
	}
	if err := s.timesheets.SetRejected(ctx, id, reason); err != nil {
		return err
	}

	s.recordAudit(ctx, id, "reject", acting.ID)
	s.publish(ctx, events.Event{
		Type:     events.EventTimesheetResolved,
		EntityID: id,
		ActorID:  acting.ID,
		Payload: events.TimesheetResolvedPayload{
			AccountID: sheet.AccountID,
			Status:    domain.TimesheetStatusRejected,
			Comments:  reason,
		},
	})
	return nil
}

// GetWeeklyTimesheet returns the timesheet for an account's week, if any.
func (s *TimeTrackingService) GetWeeklyTimesheet(ctx context.Context, accountID string, weekStart time.Time) (*domain.Timesheet, error) {
	sheet, err := s.timesheets.GetByAccountWeek(ctx, accountID, weekStart)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("timesheet", map[string]any{
				"account_id": accountID,
				"week_start": weekStart,
			})
		}
		return nil, err
	}
	return sheet, nil
}

func (s *TimeTrackingService) getTimesheet(ctx context.Context, id string) (*domain.Timesheet, error) {
	sheet, err := s.timesheets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("timesheet", map[string]any{"id": id})
		}
		return nil, err
	}
	return sheet, nil
}

func (s *TimeTrackingService) recordAudit(ctx context.Context, timesheetID, action, actorID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Insert(ctx, &domain.AuditRecord{
		EntityType:  domain.AuditEntityTimesheet,
		EntityID:    timesheetID,
		Action:      action,
		PerformedBy: actorID,
	})
}

func (s *TimeTrackingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
