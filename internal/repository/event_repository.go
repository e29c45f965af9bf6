package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// CalendarEventRepository defines persistence access for calendar events.
type CalendarEventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
}

type calendarEventRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarEventRepository returns a Postgres-backed implementation.
func NewCalendarEventRepository(pool *pgxpool.Pool) CalendarEventRepository {
	return &calendarEventRepository{pool: pool}
}

const eventColumns = `
        id, title, description, start_at, end_at, event_type, case_id, client_id,
        attendees, location, created_at, updated_at`

func (r *calendarEventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	const query = `
        INSERT INTO calendar_events (title, description, start_at, end_at, event_type,
                                     case_id, client_id, attendees, location)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Start,
		event.End,
		event.Type,
		event.CaseID,
		event.ClientID,
		event.Attendees,
		event.Location,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *calendarEventRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	const query = `
        UPDATE calendar_events
        SET title=$1, description=$2, start_at=$3, end_at=$4, event_type=$5,
            case_id=$6, client_id=$7, attendees=$8, location=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Start,
		event.End,
		event.Type,
		event.CaseID,
		event.ClientID,
		event.Attendees,
		event.Location,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarEventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarEventRepository) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	const query = `SELECT ` + eventColumns + ` FROM calendar_events WHERE id=$1`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

func (r *calendarEventRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	const query = `SELECT ` + eventColumns + `
        FROM calendar_events
        WHERE start_at >= $1 AND start_at < $2
        ORDER BY start_at`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eventList []domain.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		eventList = append(eventList, *event)
	}
	return eventList, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Start,
		&event.End,
		&event.Type,
		&event.CaseID,
		&event.ClientID,
		&event.Attendees,
		&event.Location,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}
