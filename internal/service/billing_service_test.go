package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
)

type fakeInvoiceRepo struct {
	invoices map[string]*domain.Invoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) error {
	r.seq++
	invoice.ID = fmt.Sprintf("inv-%d", r.seq)
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	return nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id string, status domain.InvoiceStatus) error {
	invoice, ok := r.invoices[id]
	if !ok {
		return pgx.ErrNoRows
	}
	invoice.Status = status
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.invoices[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, invoice := range r.invoices {
		out = append(out, *invoice)
	}
	return out, nil
}

type fakeCaseRepo struct {
	cases map[string]*domain.CaseFile
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: make(map[string]*domain.CaseFile)}
}

func (r *fakeCaseRepo) Create(_ context.Context, caseFile *domain.CaseFile) error {
	copied := *caseFile
	r.cases[caseFile.ID] = &copied
	return nil
}

func (r *fakeCaseRepo) Update(_ context.Context, caseFile *domain.CaseFile) error {
	if _, ok := r.cases[caseFile.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *caseFile
	r.cases[caseFile.ID] = &copied
	return nil
}

func (r *fakeCaseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.cases[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.cases, id)
	return nil
}

func (r *fakeCaseRepo) GetByID(_ context.Context, id string) (*domain.CaseFile, error) {
	caseFile, ok := r.cases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *caseFile
	return &copied, nil
}

func (r *fakeCaseRepo) List(_ context.Context) ([]domain.CaseFile, error) {
	var out []domain.CaseFile
	for _, caseFile := range r.cases {
		out = append(out, *caseFile)
	}
	return out, nil
}

func newBillingTestService(invoices *fakeInvoiceRepo, cases *fakeCaseRepo) *BillingService {
	return NewBillingService(invoices, cases, &fakeAuditRepo{}, events.NewInMemoryDispatcher())
}

func TestCreateInvoiceComputesAmounts(t *testing.T) {
	cases := newFakeCaseRepo()
	require.NoError(t, cases.Create(context.Background(), &domain.CaseFile{ID: "case-1", ClientID: "client-1"}))
	svc := newBillingTestService(newFakeInvoiceRepo(), cases)

	invoice := &domain.Invoice{
		CaseID:    "case-1",
		ClientID:  "client-1",
		IssueDate: time.Now(),
		DueDate:   time.Now().AddDate(0, 0, 30),
		Items: []domain.InvoiceItem{
			{Description: "Research", Hours: 2.5, Rate: 350},
			{Description: "Drafting", Hours: 1.25, Rate: 400},
		},
	}
	require.NoError(t, svc.CreateInvoice(context.Background(), invoice, "admin-1"))

	assert.InDelta(t, 875.0, invoice.Items[0].Amount, 1e-9)
	assert.InDelta(t, 500.0, invoice.Items[1].Amount, 1e-9)
	assert.InDelta(t, 1375.0, invoice.Amount, 1e-9)
	assert.Equal(t, domain.InvoiceStatusDraft, invoice.Status)
}

func TestCreateInvoiceRoundsToCents(t *testing.T) {
	cases := newFakeCaseRepo()
	require.NoError(t, cases.Create(context.Background(), &domain.CaseFile{ID: "case-1"}))
	svc := newBillingTestService(newFakeInvoiceRepo(), cases)

	invoice := &domain.Invoice{
		CaseID:  "case-1",
		DueDate: time.Now(),
		Items: []domain.InvoiceItem{
			{Description: "Odd block", Hours: 0.333, Rate: 100},
		},
	}
	require.NoError(t, svc.CreateInvoice(context.Background(), invoice, "admin-1"))
	assert.InDelta(t, 33.30, invoice.Items[0].Amount, 1e-9)
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	svc := newBillingTestService(newFakeInvoiceRepo(), newFakeCaseRepo())
	err := svc.CreateInvoice(context.Background(), &domain.Invoice{CaseID: "case-1"}, "admin-1")
	assert.Error(t, err)
}

func TestCreateInvoiceUnknownCase(t *testing.T) {
	svc := newBillingTestService(newFakeInvoiceRepo(), newFakeCaseRepo())
	err := svc.CreateInvoice(context.Background(), &domain.Invoice{
		CaseID: "missing",
		Items:  []domain.InvoiceItem{{Description: "x", Hours: 1, Rate: 100}},
	}, "admin-1")
	assert.Error(t, err)
}

func TestSendAndPayInvoice(t *testing.T) {
	cases := newFakeCaseRepo()
	require.NoError(t, cases.Create(context.Background(), &domain.CaseFile{ID: "case-1"}))
	invoices := newFakeInvoiceRepo()
	svc := newBillingTestService(invoices, cases)

	invoice := &domain.Invoice{
		CaseID:  "case-1",
		DueDate: time.Now(),
		Items:   []domain.InvoiceItem{{Description: "x", Hours: 1, Rate: 100}},
	}
	require.NoError(t, svc.CreateInvoice(context.Background(), invoice, "admin-1"))

	require.NoError(t, svc.SendInvoice(context.Background(), invoice.ID, "admin-1"))
	stored, err := svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, stored.Status)

	require.NoError(t, svc.MarkPaid(context.Background(), invoice.ID, "admin-1"))
	stored, err = svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, stored.Status)
}

func TestGetInvoiceNotFound(t *testing.T) {
	svc := newBillingTestService(newFakeInvoiceRepo(), newFakeCaseRepo())
	_, err := svc.GetInvoice(context.Background(), "missing")
	assert.Error(t, err)
}
