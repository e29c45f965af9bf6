package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// AuditRepository defines append-only access to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.AuditEntityType, entityID string) ([]domain.AuditRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository returns a Postgres-backed implementation.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	const query = `
        INSERT INTO audit_log (entity_type, entity_id, action, performed_by, details)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		record.EntityType,
		record.EntityID,
		record.Action,
		record.PerformedBy,
		record.Details,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *auditRepository) ListByEntity(ctx context.Context, entityType domain.AuditEntityType, entityID string) ([]domain.AuditRecord, error) {
	const query = `
        SELECT id, entity_type, entity_id, action, performed_by, details, created_at
        FROM audit_log WHERE entity_type=$1 AND entity_id=$2 ORDER BY created_at DESC`

	return r.list(ctx, query, entityType, entityID)
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
        SELECT id, entity_type, entity_id, action, performed_by, details, created_at
        FROM audit_log ORDER BY created_at DESC LIMIT $1`

	return r.list(ctx, query, limit)
}

func (r *auditRepository) list(ctx context.Context, query string, args ...any) ([]domain.AuditRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var record domain.AuditRecord
		if err := rows.Scan(
			&record.ID,
			&record.EntityType,
			&record.EntityID,
			&record.Action,
			&record.PerformedBy,
			&record.Details,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
