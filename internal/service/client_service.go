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

// ClientService coordinates client record workflows.
type ClientService struct {
	clients repository.ClientRepository
	audit   repository.AuditRepository
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository, audit repository.AuditRepository) *ClientService {
	return &ClientService{clients: clients, audit: audit}
}

// AddClient validates and stores a new client.
func (s *ClientService) AddClient(ctx context.Context, client *domain.Client, actorID string) error {
	if strings.TrimSpace(client.FirstName) == "" || strings.TrimSpace(client.LastName) == "" {
		return apperrors.NewValidationError("first and last name required", nil)
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return err
	}
	s.recordAudit(ctx, client.ID, "create", actorID)
	return nil
}

// UpdateClient replaces a client record.
func (s *ClientService) UpdateClient(ctx context.Context, client *domain.Client, actorID string) error {
	if err := s.clients.Update(ctx, client); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"id": client.ID})
		}
		return err
	}
	s.recordAudit(ctx, client.ID, "update", actorID)
	return nil
}

// DeleteClient removes a client record.
func (s *ClientService) DeleteClient(ctx context.Context, id, actorID string) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("client", map[string]any{"id": id})
		}
		return err
	}
	s.recordAudit(ctx, id, "delete", actorID)
	return nil
}

// GetClient loads one client record.
func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": id})
		}
		return nil, err
	}
	return client, nil
}

// ListClients returns all client records.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) recordAudit(ctx context.Context, clientID, action, actorID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Insert(ctx, &domain.AuditRecord{
		EntityType:  domain.AuditEntityClient,
		EntityID:    clientID,
		Action:      action,
		PerformedBy: actorID,
	})
}
