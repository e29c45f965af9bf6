package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// TimesheetRepository defines persistence access for weekly timesheets.
type TimesheetRepository interface {
	Create(ctx context.Context, sheet *domain.Timesheet) error
	SetApproved(ctx context.Context, id, approvedBy string, at time.Time) error
	SetRejected(ctx context.Context, id, comments string) error
	GetByID(ctx context.Context, id string) (*domain.Timesheet, error)
	GetByAccountWeek(ctx context.Context, accountID string, weekStart time.Time) (*domain.Timesheet, error)
	ListByStatus(ctx context.Context, status domain.TimesheetStatus) ([]domain.Timesheet, error)
}

type timesheetRepository struct {
	pool *pgxpool.Pool
}

// NewTimesheetRepository returns a Postgres-backed implementation.
func NewTimesheetRepository(pool *pgxpool.Pool) TimesheetRepository {
	return &timesheetRepository{pool: pool}
}

const timesheetColumns = `
        id, account_id, week_start_date, week_end_date, total_hours, billable_hours,
        non_billable_hours, status, submitted_at, approved_at, approved_by, comments,
        created_at, updated_at`

func (r *timesheetRepository) Create(ctx context.Context, sheet *domain.Timesheet) error {
	const query = `
        INSERT INTO timesheets (account_id, week_start_date, week_end_date, total_hours,
                                billable_hours, non_billable_hours, status, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		sheet.AccountID,
		sheet.WeekStartDate,
		sheet.WeekEndDate,
		sheet.TotalHours,
		sheet.BillableHours,
		sheet.NonBillableHours,
		sheet.Status,
		sheet.SubmittedAt,
	).Scan(&sheet.ID, &sheet.CreatedAt, &sheet.UpdatedAt)
}

func (r *timesheetRepository) SetApproved(ctx context.Context, id, approvedBy string, at time.Time) error {
	const query = `
        UPDATE timesheets
        SET status=$1, approved_at=$2, approved_by=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, domain.TimesheetStatusApproved, at, approvedBy, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *timesheetRepository) SetRejected(ctx context.Context, id, comments string) error {
	const query = `
        UPDATE timesheets
        SET status=$1, comments=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, domain.TimesheetStatusRejected, comments, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, id string) (*domain.Timesheet, error) {
	const query = `SELECT ` + timesheetColumns + ` FROM timesheets WHERE id=$1`
	return scanTimesheet(r.pool.QueryRow(ctx, query, id))
}

func (r *timesheetRepository) GetByAccountWeek(ctx context.Context, accountID string, weekStart time.Time) (*domain.Timesheet, error) {
	const query = `SELECT ` + timesheetColumns + `
        FROM timesheets WHERE account_id=$1 AND week_start_date=$2`
	return scanTimesheet(r.pool.QueryRow(ctx, query, accountID, weekStart))
}

func (r *timesheetRepository) ListByStatus(ctx context.Context, status domain.TimesheetStatus) ([]domain.Timesheet, error) {
	const query = `SELECT ` + timesheetColumns + `
        FROM timesheets WHERE status=$1 ORDER BY week_start_date DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []domain.Timesheet
	for rows.Next() {
		sheet, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, *sheet)
	}
	return sheets, rows.Err()
}

func scanTimesheet(row pgx.Row) (*domain.Timesheet, error) {
	var sheet domain.Timesheet
	if err := row.Scan(
		&sheet.ID,
		&sheet.AccountID,
		&sheet.WeekStartDate,
		&sheet.WeekEndDate,
		&sheet.TotalHours,
		&sheet.BillableHours,
		&sheet.NonBillableHours,
		&sheet.Status,
		&sheet.SubmittedAt,
		&sheet.ApprovedAt,
		&sheet.ApprovedBy,
		&sheet.Comments,
		&sheet.CreatedAt,
		&sheet.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sheet, nil
}
