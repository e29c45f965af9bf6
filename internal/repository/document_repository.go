package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// DocumentRepository defines persistence access for document records.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository returns a Postgres-backed implementation.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

const documentColumns = `
        id, title, category, case_id, client_id, uploaded_by, status, tags,
        description, version, size_bytes, file_type, file_url, hash,
        last_modified, uploaded_at, updated_at`

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (title, category, case_id, client_id, uploaded_by, status, tags,
                               description, version, size_bytes, file_type, file_url, hash, last_modified)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, uploaded_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		doc.Title,
		doc.Category,
		doc.CaseID,
		doc.ClientID,
		doc.UploadedBy,
		doc.Status,
		doc.Tags,
		doc.Description,
		doc.Version,
		doc.SizeBytes,
		doc.FileType,
		doc.FileURL,
		doc.Hash,
		doc.LastModified,
	).Scan(&doc.ID, &doc.UploadedAt, &doc.UpdatedAt)
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) error {
	const query = `
        UPDATE documents
        SET title=$1, category=$2, case_id=$3, client_id=$4, status=$5, tags=$6,
            description=$7, version=$8, size_bytes=$9, file_type=$10, file_url=$11,
            hash=$12, last_modified=$13, updated_at=NOW()
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		doc.Title,
		doc.Category,
		doc.CaseID,
		doc.ClientID,
		doc.Status,
		doc.Tags,
		doc.Description,
		doc.Version,
		doc.SizeBytes,
		doc.FileType,
		doc.FileURL,
		doc.Hash,
		doc.LastModified,
		doc.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	const query = `SELECT ` + documentColumns + ` FROM documents WHERE id=$1`
	return scanDocument(r.pool.QueryRow(ctx, query, id))
}

func (r *documentRepository) List(ctx context.Context) ([]domain.Document, error) {
	const query = `SELECT ` + documentColumns + ` FROM documents ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var doc domain.Document
	if err := row.Scan(
		&doc.ID,
		&doc.Title,
		&doc.Category,
		&doc.CaseID,
		&doc.ClientID,
		&doc.UploadedBy,
		&doc.Status,
		&doc.Tags,
		&doc.Description,
		&doc.Version,
		&doc.SizeBytes,
		&doc.FileType,
		&doc.FileURL,
		&doc.Hash,
		&doc.LastModified,
		&doc.UploadedAt,
		&doc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}
