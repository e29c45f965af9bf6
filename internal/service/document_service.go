package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/config"
	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/integrity"
	"github.com/firmdesk/practice-service/internal/observability"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// DocumentService coordinates document metadata CRUD, upload validation,
// and integrity verification.
type DocumentService struct {
	documents  repository.DocumentRepository
	audit      repository.AuditRepository
	verifier   *integrity.Verifier
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	limits     config.DocumentConfig
}

// DocumentDependencies bundles collaborators for the document service.
type DocumentDependencies struct {
	DocumentRepo repository.DocumentRepository
	AuditRepo    repository.AuditRepository
	Verifier     *integrity.Verifier
	Dispatcher   events.Dispatcher
	Metrics      *observability.Metrics
}

// NewDocumentService constructs the service.
func NewDocumentService(cfg config.DocumentConfig, deps DocumentDependencies) *DocumentService {
	return &DocumentService{
		documents:  deps.DocumentRepo,
		audit:      deps.AuditRepo,
		verifier:   deps.Verifier,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		limits:     cfg,
	}
}

// ValidateUpload enforces the firm's upload limits before a document record
// is accepted.
func (s *DocumentService) ValidateUpload(sizeBytes int64, fileType string) error {
	if sizeBytes > s.limits.MaxUploadBytes {
		return apperrors.NewValidationError(
			fmt.Sprintf("file size exceeds %s limit", integrity.FormatSize(s.limits.MaxUploadBytes)),
			map[string]any{"size_bytes": sizeBytes},
		)
	}
	for _, allowed := range s.limits.AllowedTypes {
		if fileType == allowed {
			return nil
		}
	}
	return apperrors.NewValidationError("file type not supported", map[string]any{"file_type": fileType})
}

// AddDocument validates and stores a new document record.
func (s *DocumentService) AddDocument(ctx context.Context, doc *domain.Document) error {
	if err := s.ValidateUpload(doc.SizeBytes, doc.FileType); err != nil {
		return err
	}
	if doc.Version <= 0 {
		doc.Version = 1
	}
	if doc.Status == "" {
		doc.Status = domain.DocumentStatusDraft
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return err
	}
	s.recordAudit(ctx, doc.ID, "upload", doc.UploadedBy, map[string]any{
		"title":     doc.Title,
		"file_type": doc.FileType,
		"size":      integrity.FormatSize(doc.SizeBytes),
	})
	return nil
}

// UpdateDocument replaces a document record's metadata.
func (s *DocumentService) UpdateDocument(ctx context.Context, doc *domain.Document, actorID string) error {
	if err := s.documents.Update(ctx, doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("document", map[string]any{"id": doc.ID})
		}
		return err
	}
	s.recordAudit(ctx, doc.ID, "modify", actorID, map[string]any{"version": doc.Version})
	return nil
}

// DeleteDocument removes a document record.
func (s *DocumentService) DeleteDocument(ctx context.Context, id, actorID string) error {
	if err := s.documents.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("document", map[string]any{"id": id})
		}
		return err
	}
	s.recordAudit(ctx, id, "delete", actorID, nil)
	return nil
}

// GetDocument loads one document record.
func (s *DocumentService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("document", map[string]any{"id": id})
		}
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all document records.
func (s *DocumentService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documents.List(ctx)
}

// VerifyIntegrity checks a candidate file against the recorded document.
// The result is audited regardless of validity; an invalid result
// additionally publishes a failure event for the notification sink.
// Neither side effect alters the returned result.
func (s *DocumentService) VerifyIntegrity(ctx context.Context, documentID string, file integrity.LocalFile, actorID string) (*integrity.CheckResult, error) {
	doc, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	result, err := s.verifier.Verify(ctx, doc, file)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordVerification(result.IsValid)
	s.recordAudit(ctx, doc.ID, "verify", actorID, map[string]any{
		"is_valid":      result.IsValid,
		"local_hash":    result.LocalHash,
		"cloud_hash":    result.CloudHash,
		"local_size":    result.LocalSize,
		"cloud_size":    result.CloudSize,
		"file_type":     result.FileType,
		"last_modified": result.LastModified,
		"discrepancies": result.Messages(),
	})

	eventType := events.EventDocumentVerified
	if !result.IsValid {
		eventType = events.EventDocumentVerificationFailed
	}
	s.publish(ctx, events.Event{
		Type:     eventType,
		EntityID: doc.ID,
		ActorID:  actorID,
		Payload: events.DocumentVerifiedPayload{
			DocumentID:    doc.ID,
			IsValid:       result.IsValid,
			Discrepancies: result.Messages(),
		},
	})

	return result, nil
}

func (s *DocumentService) recordAudit(ctx context.Context, documentID, action, actorID string, details map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Insert(ctx, &domain.AuditRecord{
		EntityType:  domain.AuditEntityDocument,
		EntityID:    documentID,
		Action:      action,
		PerformedBy: actorID,
		Details:     details,
	})
}

func (s *DocumentService) publish(ctx context.Context, event events.Event) {
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
