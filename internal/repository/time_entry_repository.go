package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// TimeEntryRepository defines persistence access for tracked time.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	Update(ctx context.Context, entry *domain.TimeEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	ListByAccountRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.TimeEntry, error)
}

type timeEntryRepository struct {
	pool *pgxpool.Pool
}

// NewTimeEntryRepository returns a Postgres-backed implementation.
func NewTimeEntryRepository(pool *pgxpool.Pool) TimeEntryRepository {
	return &timeEntryRepository{pool: pool}
}

const timeEntryColumns = `
        id, account_id, entry_date, start_time, end_time, duration_minutes,
        case_id, client_id, description, billable, rate, category, activity_code,
        created_at, updated_at`

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	const query = `
        INSERT INTO time_entries (account_id, entry_date, start_time, end_time, duration_minutes,
                                  case_id, client_id, description, billable, rate, category, activity_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		entry.AccountID,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.DurationMinutes,
		entry.CaseID,
		entry.ClientID,
		entry.Description,
		entry.Billable,
		entry.Rate,
		entry.Category,
		entry.ActivityCode,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *timeEntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	const query = `
        UPDATE time_entries
        SET entry_date=$1, start_time=$2, end_time=$3, duration_minutes=$4, case_id=$5,
            client_id=$6, description=$7, billable=$8, rate=$9, category=$10,
            activity_code=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.DurationMinutes,
		entry.CaseID,
		entry.ClientID,
		entry.Description,
		entry.Billable,
		entry.Rate,
		entry.Category,
		entry.ActivityCode,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM time_entries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	const query = `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id=$1`
	return scanTimeEntry(r.pool.QueryRow(ctx, query, id))
}

func (r *timeEntryRepository) ListByAccountRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.TimeEntry, error) {
	const query = `SELECT ` + timeEntryColumns + `
        FROM time_entries
        WHERE account_id=$1 AND entry_date >= $2 AND entry_date < $3
        ORDER BY entry_date, start_time`

	rows, err := r.pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func scanTimeEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	if err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.Date,
		&entry.StartTime,
		&entry.EndTime,
		&entry.DurationMinutes,
		&entry.CaseID,
		&entry.ClientID,
		&entry.Description,
		&entry.Billable,
		&entry.Rate,
		&entry.Category,
		&entry.ActivityCode,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}
