package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// CaseService coordinates case file workflows.
type CaseService struct {
	cases   repository.CaseRepository
	clients repository.ClientRepository
	audit   repository.AuditRepository
}

// NewCaseService constructs the service.
func NewCaseService(cases repository.CaseRepository, clients repository.ClientRepository, audit repository.AuditRepository) *CaseService {
	return &CaseService{cases: cases, clients: clients, audit: audit}
}

// OpenCase validates and stores a new case file. The referenced client
// must exist.
func (s *CaseService) OpenCase(ctx context.Context, caseFile *domain.CaseFile, actorID string) error {
	if strings.TrimSpace(caseFile.Title) == "" || strings.TrimSpace(caseFile.CaseNumber) == "" {
		return apperrors.NewValidationError("title and case number required", nil)
	}
	if _, err := s.clients.GetByID(ctx, caseFile.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"id": caseFile.ClientID})
		}
		return err
	}
	if caseFile.Status == "" {
		caseFile.Status = domain.CaseStatusActive
	}
	if caseFile.Priority == "" {
		caseFile.Priority = domain.CasePriorityMedium
	}
	if err := s.cases.Create(ctx, caseFile); err != nil {
		return err
	}
	s.recordAudit(ctx, caseFile.ID, "create", actorID)
	return nil
}

// UpdateCase replaces a case file.
func (s *CaseService) UpdateCase(ctx context.Context, caseFile *domain.CaseFile, actorID string) error {
	if err := s.cases.Update(ctx, caseFile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("case", map[string]any{"id": caseFile.ID})
		}
		return err
	}
	s.recordAudit(ctx, caseFile.ID, "update", actorID)
	return nil
}

// DeleteCase removes a case file.
func (s *CaseService) DeleteCase(ctx context.Context, id, actorID string) error {
	if err := s.cases.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("case", map[string]any{"id": id})
		}
		return err
	}
	s.recordAudit(ctx, id, "delete", actorID)
	return nil
}

// GetCase loads one case file.
func (s *CaseService) GetCase(ctx context.Context, id string) (*domain.CaseFile, error) {
	caseFile, err := s.cases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("case", map[string]any{"id": id})
		}
		return nil, err
	}
	return caseFile, nil
}

// ListCases returns all case files.
func (s *CaseService) ListCases(ctx context.Context) ([]domain.CaseFile, error) {
	return s.cases.List(ctx)
}

func (s *CaseService) recordAudit(ctx context.Context, caseID, action, actorID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Insert(ctx, &domain.AuditRecord{
		EntityType:  domain.AuditEntityCase,
		EntityID:    caseID,
		Action:      action,
		PerformedBy: actorID,
	})
}
