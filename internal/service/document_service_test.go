package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdesk/practice-service/internal/config"
	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/integrity"
	"github.com/firmdesk/practice-service/internal/observability"
)

type fakeDocumentRepo struct {
	docs map[string]*domain.Document
	seq  int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*domain.Document)}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *domain.Document) error {
	r.seq++
	doc.ID = fmt.Sprintf("doc-%d", r.seq)
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) Update(_ context.Context, doc *domain.Document) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeDocumentRepo) List(_ context.Context) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range r.docs {
		out = append(out, *doc)
	}
	return out, nil
}

func docTestConfig() config.DocumentConfig {
	return config.DocumentConfig{
		MaxUploadBytes: 100 * 1024 * 1024,
		AllowedTypes:   []string{"application/pdf", "image/png"},
	}
}

type docTestEnv struct {
	service    *DocumentService
	repo       *fakeDocumentRepo
	audit      *fakeAuditRepo
	dispatcher events.Dispatcher
}

func newDocTestEnv() *docTestEnv {
	env := &docTestEnv{
		repo:       newFakeDocumentRepo(),
		audit:      &fakeAuditRepo{},
		dispatcher: events.NewInMemoryDispatcher(),
	}
	env.service = NewDocumentService(docTestConfig(), DocumentDependencies{
		DocumentRepo: env.repo,
		AuditRepo:    env.audit,
		Verifier:     integrity.NewVerifier(nil, nil),
		Dispatcher:   env.dispatcher,
		Metrics:      observability.NewMetrics(),
	})
	return env
}

func docSHA256(data []byte) *string {
	sum := sha256.Sum256(data)
	s := hex.EncodeToString(sum[:])
	return &s
}

func TestValidateUpload(t *testing.T) {
	env := newDocTestEnv()

	assert.NoError(t, env.service.ValidateUpload(1024, "application/pdf"))
	assert.Error(t, env.service.ValidateUpload(1024, "application/x-msdownload"))
	assert.Error(t, env.service.ValidateUpload(101*1024*1024, "application/pdf"))
}

func TestAddDocumentDefaults(t *testing.T) {
	env := newDocTestEnv()

	doc := &domain.Document{
		Title:      "Retainer",
		UploadedBy: "acct-1",
		SizeBytes:  2048,
		FileType:   "application/pdf",
	}
	require.NoError(t, env.service.AddDocument(context.Background(), doc))
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, domain.DocumentStatusDraft, doc.Status)
	assert.NotEmpty(t, doc.ID)
}

func TestVerifyIntegrityValid(t *testing.T) {
	env := newDocTestEnv()
	content := []byte("executed agreement")
	modified := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	doc := &domain.Document{
		Title:        "Agreement",
		UploadedBy:   "acct-1",
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		Hash:         docSHA256(content),
		LastModified: modified,
	}
	require.NoError(t, env.service.AddDocument(context.Background(), doc))

	var verified, failed int
	env.dispatcher.Subscribe(events.EventDocumentVerified, func(context.Context, events.Event) error {
		verified++
		return nil
	})
	env.dispatcher.Subscribe(events.EventDocumentVerificationFailed, func(context.Context, events.Event) error {
		failed++
		return nil
	})

	result, err := env.service.VerifyIntegrity(context.Background(), doc.ID, integrity.LocalFile{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		LastModified: modified,
		Content:      bytes.NewReader(content),
	}, "acct-1")
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, 1, verified)
	assert.Zero(t, failed)

	records, err := env.audit.ListByEntity(context.Background(), domain.AuditEntityDocument, doc.ID)
	require.NoError(t, err)
	require.Len(t, records, 2) // upload + verify
	assert.Equal(t, "verify", records[1].Action)
	assert.Equal(t, true, records[1].Details["is_valid"])
}

func TestVerifyIntegrityTampered(t *testing.T) {
	env := newDocTestEnv()
	content := []byte("original contract body")
	modified := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	doc := &domain.Document{
		Title:        "Contract",
		UploadedBy:   "acct-1",
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		Hash:         docSHA256(content),
		LastModified: modified,
	}
	require.NoError(t, env.service.AddDocument(context.Background(), doc))

	var failures []events.Event
	env.dispatcher.Subscribe(events.EventDocumentVerificationFailed, func(_ context.Context, event events.Event) error {
		failures = append(failures, event)
		return nil
	})

	tampered := []byte("altered contract body!")
	result, err := env.service.VerifyIntegrity(context.Background(), doc.ID, integrity.LocalFile{
		SizeBytes:    int64(len(tampered)),
		FileType:     "application/pdf",
		LastModified: modified,
		Content:      bytes.NewReader(tampered),
	}, "acct-1")
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	require.Len(t, failures, 1)
	payload, ok := failures[0].Payload.(events.DocumentVerifiedPayload)
	require.True(t, ok)
	assert.False(t, payload.IsValid)
	assert.NotEmpty(t, payload.Discrepancies)
}

func TestVerifyIntegrityUnknownDocument(t *testing.T) {
	env := newDocTestEnv()
	_, err := env.service.VerifyIntegrity(context.Background(), "missing", integrity.LocalFile{
		Content: bytes.NewReader([]byte("x")),
	}, "acct-1")
	assert.Error(t, err)
}
