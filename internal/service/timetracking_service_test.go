package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

type fakeTimeEntryRepo struct {
	entries map[string]*domain.TimeEntry
	seq     int
}

func newFakeTimeEntryRepo() *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{entries: make(map[string]*domain.TimeEntry)}
}

func (r *fakeTimeEntryRepo) Create(_ context.Context, entry *domain.TimeEntry) error {
	r.seq++
	entry.ID = fmt.Sprintf("entry-%d", r.seq)
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeTimeEntryRepo) Update(_ context.Context, entry *domain.TimeEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeTimeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeTimeEntryRepo) GetByID(_ context.Context, id string) (*domain.TimeEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeTimeEntryRepo) ListByAccountRange(_ context.Context, accountID string, from, to time.Time) ([]domain.TimeEntry, error) {
	var out []domain.TimeEntry
	for _, entry := range r.entries {
		if entry.AccountID != accountID {
			continue
		}
		if entry.Date.Before(from) || !entry.Date.Before(to) {
			continue
		}
		out = append(out, *entry)
	}
	return out, nil
}

type fakeTimesheetRepo struct {
	sheets map[string]*domain.Timesheet
	seq    int
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{sheets: make(map[string]*domain.Timesheet)}
}

func (r *fakeTimesheetRepo) Create(_ context.Context, sheet *domain.Timesheet) error {
	for _, existing := range r.sheets {
		if existing.AccountID == sheet.AccountID && existing.WeekStartDate.Equal(sheet.WeekStartDate) {
			return &pgconn.PgError{Code: "23505", ConstraintName: "timesheets_account_id_week_start_date_key"}
		}
	}
	r.seq++
	sheet.ID = fmt.Sprintf("sheet-%d", r.seq)
	copied := *sheet
	r.sheets[sheet.ID] = &copied
	return nil
}

func (r *fakeTimesheetRepo) SetApproved(_ context.Context, id, approvedBy string, at time.Time) error {
	sheet, ok := r.sheets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	sheet.Status = domain.TimesheetStatusApproved
	sheet.ApprovedBy = &approvedBy
	sheet.ApprovedAt = &at
	return nil
}

func (r *fakeTimesheetRepo) SetRejected(_ context.Context, id, comments string) error {
	sheet, ok := r.sheets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	sheet.Status = domain.TimesheetStatusRejected
	sheet.Comments = &comments
	return nil
}

func (r *fakeTimesheetRepo) GetByID(_ context.Context, id string) (*domain.Timesheet, error) {
	sheet, ok := r.sheets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *sheet
	return &copied, nil
}

func (r *fakeTimesheetRepo) GetByAccountWeek(_ context.Context, accountID string, weekStart time.Time) (*domain.Timesheet, error) {
	for _, sheet := range r.sheets {
		if sheet.AccountID == accountID && sheet.WeekStartDate.Equal(weekStart) {
			copied := *sheet
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTimesheetRepo) ListByStatus(_ context.Context, status domain.TimesheetStatus) ([]domain.Timesheet, error) {
	var out []domain.Timesheet
	for _, sheet := range r.sheets {
		if sheet.Status == status {
			out = append(out, *sheet)
		}
	}
	return out, nil
}

func newTrackingService(entries *fakeTimeEntryRepo, sheets *fakeTimesheetRepo) *TimeTrackingService {
	return NewTimeTrackingService(TimeTrackingDependencies{
		EntryRepo:     entries,
		TimesheetRepo: sheets,
		AuditRepo:     &fakeAuditRepo{},
		Dispatcher:    events.NewInMemoryDispatcher(),
	})
}

func TestCalculateTotals(t *testing.T) {
	entries := []domain.TimeEntry{
		{DurationMinutes: 90, Billable: true},
		{DurationMinutes: 30, Billable: true},
		{DurationMinutes: 45, Billable: false},
	}

	totals := CalculateTotals(entries)
	assert.InDelta(t, 2.75, totals.TotalHours, 1e-9)
	assert.InDelta(t, 2.0, totals.BillableHours, 1e-9)
	assert.InDelta(t, 0.75, totals.NonBillableHours, 1e-9)
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil)
	assert.Zero(t, totals.TotalHours)
	assert.Zero(t, totals.BillableHours)
	assert.Zero(t, totals.NonBillableHours)
}

func TestAddEntryValidation(t *testing.T) {
	svc := newTrackingService(newFakeTimeEntryRepo(), newFakeTimesheetRepo())

	err := svc.AddEntry(context.Background(), &domain.TimeEntry{DurationMinutes: 0, Description: "work"})
	assert.Error(t, err)

	err = svc.AddEntry(context.Background(), &domain.TimeEntry{DurationMinutes: 60, Description: "  "})
	assert.Error(t, err)

	err = svc.AddEntry(context.Background(), &domain.TimeEntry{
		DurationMinutes: 60,
		Description:     "research",
		ActivityCode:    "BOGUS",
	})
	assert.Error(t, err)
}

func TestAddEntryDefaultsCategory(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	svc := newTrackingService(repo, newFakeTimesheetRepo())

	entry := &domain.TimeEntry{
		AccountID:       "acct-1",
		DurationMinutes: 60,
		Description:     "deposition prep",
		Billable:        true,
		ActivityCode:    "RESEARCH",
	}
	require.NoError(t, svc.AddEntry(context.Background(), entry))
	assert.Equal(t, domain.TimeEntryCategoryBillable, entry.Category)
}

func TestSubmitTimesheetRollsUpWeek(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	sheets := newFakeTimesheetRepo()
	svc := newTrackingService(repo, sheets)

	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for i, minutes := range []int{120, 60, 90} {
		require.NoError(t, svc.AddEntry(context.Background(), &domain.TimeEntry{
			AccountID:       "acct-1",
			Date:            weekStart.AddDate(0, 0, i),
			DurationMinutes: minutes,
			Description:     "casework",
			Billable:        i != 2,
		}))
	}
	// outside the week, must not count
	require.NoError(t, svc.AddEntry(context.Background(), &domain.TimeEntry{
		AccountID:       "acct-1",
		Date:            weekStart.AddDate(0, 0, 8),
		DurationMinutes: 600,
		Description:     "next week",
		Billable:        true,
	}))

	sheet, err := svc.SubmitTimesheet(context.Background(), "acct-1", weekStart)
	require.NoError(t, err)

	assert.Equal(t, domain.TimesheetStatusSubmitted, sheet.Status)
	assert.InDelta(t, 4.5, sheet.TotalHours, 1e-9)
	assert.InDelta(t, 3.0, sheet.BillableHours, 1e-9)
	assert.InDelta(t, 1.5, sheet.NonBillableHours, 1e-9)
	require.NotNil(t, sheet.SubmittedAt)

	stored, err := svc.GetWeeklyTimesheet(context.Background(), "acct-1", weekStart)
	require.NoError(t, err)
	assert.Equal(t, sheet.ID, stored.ID)
}

func TestListEntriesWithoutRangeReturnsAll(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	svc := newTrackingService(repo, newFakeTimesheetRepo())

	require.NoError(t, svc.AddEntry(context.Background(), &domain.TimeEntry{
		AccountID:       "acct-1",
		Date:            time.Now().UTC(),
		DurationMinutes: 60,
		Description:     "client call",
		Billable:        true,
	}))

	entries, err := svc.ListEntries(context.Background(), "acct-1", time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	totals := CalculateTotals(entries)
	assert.InDelta(t, 1.0, totals.TotalHours, 1e-9)
}

func TestListEntriesLowerBoundOnly(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	svc := newTrackingService(repo, newFakeTimesheetRepo())

	cutoff := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for i, day := range []time.Time{cutoff.AddDate(0, 0, -1), cutoff.AddDate(0, 0, 1)} {
		require.NoError(t, svc.AddEntry(context.Background(), &domain.TimeEntry{
			AccountID:       "acct-1",
			Date:            day,
			DurationMinutes: 30 * (i + 1),
			Description:     "casework",
		}))
	}

	entries, err := svc.ListEntries(context.Background(), "acct-1", cutoff, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 60, entries[0].DurationMinutes)
}

func TestSubmitTimesheetTwiceConflicts(t *testing.T) {
	svc := newTrackingService(newFakeTimeEntryRepo(), newFakeTimesheetRepo())

	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := svc.SubmitTimesheet(context.Background(), "acct-1", weekStart)
	require.NoError(t, err)

	_, err = svc.SubmitTimesheet(context.Background(), "acct-1", weekStart)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestTimesheetApprovalRequiresAdmin(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	sheets := newFakeTimesheetRepo()
	svc := newTrackingService(repo, sheets)

	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	sheet, err := svc.SubmitTimesheet(context.Background(), "acct-1", weekStart)
	require.NoError(t, err)

	attorney := &domain.Account{ID: "att-1", Role: domain.AccountRoleAttorney}
	assert.ErrorIs(t, svc.ApproveTimesheet(context.Background(), sheet.ID, attorney), domain.ErrUnauthorized)
	assert.ErrorIs(t, svc.RejectTimesheet(context.Background(), sheet.ID, "hours look wrong", attorney), domain.ErrUnauthorized)

	admin := &domain.Account{ID: "admin-1", Role: domain.AccountRoleAdmin}
	require.NoError(t, svc.ApproveTimesheet(context.Background(), sheet.ID, admin))

	stored, err := sheets.GetByID(context.Background(), sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TimesheetStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, "admin-1", *stored.ApprovedBy)
}

func TestRejectTimesheetRequiresReason(t *testing.T) {
	svc := newTrackingService(newFakeTimeEntryRepo(), newFakeTimesheetRepo())
	admin := &domain.Account{ID: "admin-1", Role: domain.AccountRoleAdmin}

	err := svc.RejectTimesheet(context.Background(), "sheet-1", " ", admin)
	assert.Error(t, err)
}

func TestRejectTimesheetStoresComments(t *testing.T) {
	repo := newFakeTimeEntryRepo()
	sheets := newFakeTimesheetRepo()
	svc := newTrackingService(repo, sheets)

	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	sheet, err := svc.SubmitTimesheet(context.Background(), "acct-1", weekStart)
	require.NoError(t, err)

	admin := &domain.Account{ID: "admin-1", Role: domain.AccountRoleAdmin}
	require.NoError(t, svc.RejectTimesheet(context.Background(), sheet.ID, "missing activity codes", admin))

	stored, err := sheets.GetByID(context.Background(), sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TimesheetStatusRejected, stored.Status)
	require.NotNil(t, stored.Comments)
	assert.Equal(t, "missing activity codes", *stored.Comments)
}
