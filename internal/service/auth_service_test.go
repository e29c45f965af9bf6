package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/firmdesk/practice-service/internal/config"
	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
)

type fakeAccountRepo struct {
	accounts map[string]*domain.Account
	seq      int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.seq++
	account.ID = fmt.Sprintf("acct-%d", r.seq)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountRepo) ListByStatus(_ context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	var out []domain.Account
	for _, account := range r.accounts {
		if account.Status == status {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) SetApproved(_ context.Context, id, approvedBy string, at time.Time) error {
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Status = domain.AccountStatusApproved
	account.ApprovedBy = &approvedBy
	account.ApprovedAt = &at
	account.RejectionReason = nil
	return nil
}

func (r *fakeAccountRepo) SetRejected(_ context.Context, id, reason string) error {
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Status = domain.AccountStatusRejected
	account.RejectionReason = &reason
	account.ApprovedAt = nil
	account.ApprovedBy = nil
	return nil
}

type fakeFlagStore struct {
	raised map[string]bool
}

func newFakeFlagStore() *fakeFlagStore {
	return &fakeFlagStore{raised: make(map[string]bool)}
}

func (s *fakeFlagStore) Raise(_ context.Context, email string) error {
	s.raised[email] = true
	return nil
}

func (s *fakeFlagStore) Active(_ context.Context, email string) (bool, error) {
	return s.raised[email], nil
}

type fakeAuditRepo struct {
	records []domain.AuditRecord
}

func (r *fakeAuditRepo) Insert(_ context.Context, record *domain.AuditRecord) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeAuditRepo) ListByEntity(_ context.Context, entityType domain.AuditEntityType, entityID string) ([]domain.AuditRecord, error) {
	var out []domain.AuditRecord
	for _, record := range r.records {
		if record.EntityType == entityType && record.EntityID == entityID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeAuditRepo) ListRecent(_ context.Context, _ int) ([]domain.AuditRecord, error) {
	return r.records, nil
}

type authTestEnv struct {
	service  *AuthService
	accounts *fakeAccountRepo
	flags    *fakeFlagStore
	audit    *fakeAuditRepo
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 15
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.BootstrapAdminEmail = "admin@firm.local"
	cfg.Auth.BootstrapAdminPassword = "bootstrap-pass"

	env := &authTestEnv{
		accounts: newFakeAccountRepo(),
		flags:    newFakeFlagStore(),
		audit:    &fakeAuditRepo{},
	}

	svc, err := NewAuthService(cfg, AuthDependencies{
		AccountRepo: env.accounts,
		FlagStore:   env.flags,
		AuditRepo:   env.audit,
		Dispatcher:  events.NewInMemoryDispatcher(),
	})
	require.NoError(t, err)
	env.service = svc
	return env
}

func (e *authTestEnv) register(t *testing.T, email string) *domain.Account {
	t.Helper()
	account, err := e.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	return account
}

func (e *authTestEnv) admin() *domain.Account {
	return &domain.Account{ID: "admin-1", Role: domain.AccountRoleAdmin, Status: domain.AccountStatusApproved}
}

func TestSignUpStartsPending(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")

	assert.Equal(t, domain.AccountStatusPending, account.Status)
	assert.Equal(t, domain.AccountRoleAttorney, account.Role)

	active, err := env.service.PendingFlagActive(context.Background(), "jane@firm.local")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	env := newAuthTestEnv(t)
	env.register(t, "jane@firm.local")

	_, err := env.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "jane@firm.local",
		Password:  "different-pass",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestSignUpBootstrapEmailReserved(t *testing.T) {
	env := newAuthTestEnv(t)

	_, err := env.service.SignUp(context.Background(), SignUpInput{
		FirstName: "Sneaky",
		LastName:  "User",
		Email:     "admin@firm.local",
		Password:  "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLoginPendingAccount(t *testing.T) {
	env := newAuthTestEnv(t)
	env.register(t, "jane@firm.local")

	_, _, _, err := env.service.Login(context.Background(), "jane@firm.local", "s3cret-pass")
	assert.ErrorIs(t, err, domain.ErrPendingApproval)

	active, err := env.service.PendingFlagActive(context.Background(), "jane@firm.local")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestApproveThenLogin(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")

	require.NoError(t, env.service.ApproveUser(context.Background(), account.ID, env.admin()))

	logged, token, exp, err := env.service.Login(context.Background(), "jane@firm.local", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusApproved, logged.Status)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))
	require.NotNil(t, logged.ApprovedBy)
	assert.Equal(t, "admin-1", *logged.ApprovedBy)
}

func TestApprovedLoginWrongPassword(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")
	require.NoError(t, env.service.ApproveUser(context.Background(), account.ID, env.admin()))

	_, _, _, err := env.service.Login(context.Background(), "jane@firm.local", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRejectThenLoginCarriesReason(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")

	require.NoError(t, env.service.RejectUser(context.Background(), account.ID, "insufficient credentials", env.admin()))

	_, _, _, err := env.service.Login(context.Background(), "jane@firm.local", "s3cret-pass")
	var rejected *domain.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "insufficient credentials", rejected.Reason)
}

func TestRejectRequiresReason(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")

	err := env.service.RejectUser(context.Background(), account.ID, "   ", env.admin())
	assert.Error(t, err)
}

func TestApproveRequiresAdmin(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")

	attorney := &domain.Account{ID: "att-1", Role: domain.AccountRoleAttorney}
	assert.ErrorIs(t, env.service.ApproveUser(context.Background(), account.ID, attorney), domain.ErrUnauthorized)
	assert.ErrorIs(t, env.service.RejectUser(context.Background(), account.ID, "nope", attorney), domain.ErrUnauthorized)
}

func TestApproveUnknownAccount(t *testing.T) {
	env := newAuthTestEnv(t)
	err := env.service.ApproveUser(context.Background(), "missing", env.admin())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRejectedAccountCanBeApproved(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")

	require.NoError(t, env.service.RejectUser(context.Background(), account.ID, "incomplete application", env.admin()))
	require.NoError(t, env.service.ApproveUser(context.Background(), account.ID, env.admin()))

	logged, _, _, err := env.service.Login(context.Background(), "jane@firm.local", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusApproved, logged.Status)
	assert.Nil(t, logged.RejectionReason)
}

func TestBootstrapAdminLogin(t *testing.T) {
	env := newAuthTestEnv(t)

	admin, token, _, err := env.service.Login(context.Background(), "admin@firm.local", "bootstrap-pass")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.Equal(t, domain.AccountStatusApproved, admin.Status)
	assert.NotEmpty(t, token)

	// bootstrap credentials never reach the account store
	_, err = env.accounts.GetByEmail(context.Background(), "admin@firm.local")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestBootstrapAdminWrongPasswordFallsThrough(t *testing.T) {
	env := newAuthTestEnv(t)

	_, _, _, err := env.service.Login(context.Background(), "admin@firm.local", "not-the-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestListPendingAccounts(t *testing.T) {
	env := newAuthTestEnv(t)
	first := env.register(t, "a@firm.local")
	env.register(t, "b@firm.local")
	require.NoError(t, env.service.ApproveUser(context.Background(), first.ID, env.admin()))

	pending, err := env.service.ListPendingAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b@firm.local", pending[0].Email)
}

func TestResolveAccountBootstrap(t *testing.T) {
	env := newAuthTestEnv(t)

	account, err := env.service.ResolveAccount(context.Background(), "bootstrap-admin")
	require.NoError(t, err)
	assert.True(t, account.IsAdmin())
}

func TestTransitionsAreAudited(t *testing.T) {
	env := newAuthTestEnv(t)
	account := env.register(t, "jane@firm.local")
	require.NoError(t, env.service.ApproveUser(context.Background(), account.ID, env.admin()))

	records, err := env.audit.ListByEntity(context.Background(), domain.AuditEntityAccount, account.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "registered", records[0].Action)
	assert.Equal(t, "approved", records[1].Action)
	assert.Equal(t, "admin-1", records[1].PerformedBy)
}
