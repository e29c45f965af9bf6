package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// BillingService coordinates invoice workflows.
type BillingService struct {
	invoices   repository.InvoiceRepository
	cases      repository.CaseRepository
	audit      repository.AuditRepository
	dispatcher events.Dispatcher
}

// NewBillingService constructs the service.
func NewBillingService(invoices repository.InvoiceRepository, cases repository.CaseRepository, audit repository.AuditRepository, dispatcher events.Dispatcher) *BillingService {
	return &BillingService{invoices: invoices, cases: cases, audit: audit, dispatcher: dispatcher}
}

// CreateInvoice computes line amounts from hours and rate, totals them
// into the invoice amount, and stores the invoice with its items.
func (s *BillingService) CreateInvoice(ctx context.Context, invoice *domain.Invoice, actorID string) error {
	if len(invoice.Items) == 0 {
		return apperrors.NewValidationError("invoice requires at least one item", nil)
	}
	if _, err := s.cases.GetByID(ctx, invoice.CaseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("case", map[string]any{"id": invoice.CaseID})
		}
		return err
	}

	total := 0.0
	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.Amount = roundCents(item.Hours * item.Rate)
		total += item.Amount
	}
	invoice.Amount = roundCents(total)

	if invoice.Status == "" {
		invoice.Status = domain.InvoiceStatusDraft
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return err
	}

	s.recordAudit(ctx, invoice.ID, "create", actorID)
	return nil
}

// SendInvoice transitions a draft invoice to SENT and notifies.
func (s *BillingService) SendInvoice(ctx context.Context, id, actorID string) error {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	if err := s.invoices.UpdateStatus(ctx, id, domain.InvoiceStatusSent); err != nil {
		return err
	}

	s.recordAudit(ctx, id, "send", actorID)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInvoiceIssued,
			EntityID:  id,
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload: events.InvoiceIssuedPayload{
				CaseID:   invoice.CaseID,
				ClientID: invoice.ClientID,
				Amount:   invoice.Amount,
			},
		})
	}
	return nil
}

// MarkPaid transitions an invoice to PAID.
func (s *BillingService) MarkPaid(ctx context.Context, id, actorID string) error {
	if err := s.invoices.UpdateStatus(ctx, id, domain.InvoiceStatusPaid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("invoice", map[string]any{"id": id})
		}
		return err
	}
	s.recordAudit(ctx, id, "paid", actorID)
	return nil
}

// DeleteInvoice removes an invoice and its items.
func (s *BillingService) DeleteInvoice(ctx context.Context, id, actorID string) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("invoice", map[string]any{"id": id})
		}
		return err
	}
	s.recordAudit(ctx, id, "delete", actorID)
	return nil
}

// GetInvoice loads one invoice with its items.
func (s *BillingService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("invoice", map[string]any{"id": id})
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoices returns all invoices.
func (s *BillingService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *BillingService) recordAudit(ctx context.Context, invoiceID, action, actorID string) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Insert(ctx, &domain.AuditRecord{
		EntityType:  domain.AuditEntityInvoice,
		EntityID:    invoiceID,
		Action:      action,
		PerformedBy: actorID,
	})
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
