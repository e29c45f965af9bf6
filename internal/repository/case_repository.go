package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// CaseRepository defines persistence access for case files.
type CaseRepository interface {
	Create(ctx context.Context, caseFile *domain.CaseFile) error
	Update(ctx context.Context, caseFile *domain.CaseFile) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CaseFile, error)
	List(ctx context.Context) ([]domain.CaseFile, error)
}

type caseRepository struct {
	pool *pgxpool.Pool
}

// NewCaseRepository returns a Postgres-backed implementation.
func NewCaseRepository(pool *pgxpool.Pool) CaseRepository {
	return &caseRepository{pool: pool}
}

const caseColumns = `
        id, title, case_number, client_id, status, priority, practice_area,
        assigned_attorney, description, open_date, due_date, created_at, updated_at`

func (r *caseRepository) Create(ctx context.Context, caseFile *domain.CaseFile) error {
	const query = `
        INSERT INTO cases (title, case_number, client_id, status, priority, practice_area,
                           assigned_attorney, description, open_date, due_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		caseFile.Title,
		caseFile.CaseNumber,
		caseFile.ClientID,
		caseFile.Status,
		caseFile.Priority,
		caseFile.PracticeArea,
		caseFile.AssignedAttorney,
		caseFile.Description,
		caseFile.OpenDate,
		caseFile.DueDate,
	).Scan(&caseFile.ID, &caseFile.CreatedAt, &caseFile.UpdatedAt)
}

func (r *caseRepository) Update(ctx context.Context, caseFile *domain.CaseFile) error {
	const query = `
        UPDATE cases
        SET title=$1, case_number=$2, client_id=$3, status=$4, priority=$5, practice_area=$6,
            assigned_attorney=$7, description=$8, open_date=$9, due_date=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		caseFile.Title,
		caseFile.CaseNumber,
		caseFile.ClientID,
		caseFile.Status,
		caseFile.Priority,
		caseFile.PracticeArea,
		caseFile.AssignedAttorney,
		caseFile.Description,
		caseFile.OpenDate,
		caseFile.DueDate,
		caseFile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *caseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *caseRepository) GetByID(ctx context.Context, id string) (*domain.CaseFile, error) {
	const query = `SELECT ` + caseColumns + ` FROM cases WHERE id=$1`
	return scanCase(r.pool.QueryRow(ctx, query, id))
}

func (r *caseRepository) List(ctx context.Context) ([]domain.CaseFile, error) {
	const query = `SELECT ` + caseColumns + ` FROM cases ORDER BY open_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []domain.CaseFile
	for rows.Next() {
		caseFile, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *caseFile)
	}
	return cases, rows.Err()
}

func scanCase(row pgx.Row) (*domain.CaseFile, error) {
	var caseFile domain.CaseFile
	if err := row.Scan(
		&caseFile.ID,
		&caseFile.Title,
		&caseFile.CaseNumber,
		&caseFile.ClientID,
		&caseFile.Status,
		&caseFile.Priority,
		&caseFile.PracticeArea,
		&caseFile.AssignedAttorney,
		&caseFile.Description,
		&caseFile.OpenDate,
		&caseFile.DueDate,
		&caseFile.CreatedAt,
		&caseFile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &caseFile, nil
}
