package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/auth"
	"github.com/firmdesk/practice-service/internal/config"
	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/events"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// bootstrapAdminID identifies the synthesized administrator account that
// exists outside the account store.
const bootstrapAdminID = "bootstrap-admin"

// SignUpInput describes a registration request.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService implements the account approval lifecycle: registration into
// the pending state, approval-gated sign-in, and the admin approve/reject
// transitions.
type AuthService struct {
	accounts   repository.AccountRepository
	flags      repository.ApprovalFlagStore
	audit      repository.AuditRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int

	bootstrapEmail string
	bootstrapHash  string
	startedAt      time.Time
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	FlagStore   repository.ApprovalFlagStore
	AuditRepo   repository.AuditRepository
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service. The bootstrap admin credential comes
// from configuration and is verified through the same bcrypt comparison as
// ordinary accounts; its hash is computed once here so no plaintext is kept.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	s := &AuthService{
		accounts:       deps.AccountRepo,
		flags:          deps.FlagStore,
		audit:          deps.AuditRepo,
		dispatcher:     deps.Dispatcher,
		tokenMgr:       auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost:     cfg.Auth.BcryptCost,
		bootstrapEmail: strings.ToLower(cfg.Auth.BootstrapAdminEmail),
		startedAt:      time.Now(),
	}

	if cfg.Auth.BootstrapAdminPassword != "" {
		hash, err := auth.HashPassword(cfg.Auth.BootstrapAdminPassword, cfg.Auth.BcryptCost)
		if err != nil {
			return nil, err
		}
		s.bootstrapHash = hash
	}

	return s, nil
}

// SignUp registers a new account in the PENDING state. New registrants are
// always attorneys; the email must not belong to any known account
// regardless of its status.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}
	if email == s.bootstrapEmail {
		return nil, domain.ErrDuplicateEmail
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         domain.AccountRoleAttorney,
		Status:       domain.AccountStatusPending,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	// transient UI affordance, self-clears after its TTL
	_ = s.flags.Raise(ctx, email)

	s.recordTransition(ctx, account.ID, "registered", account.ID, map[string]any{"email": email})
	s.publish(ctx, events.Event{
		Type:     events.EventAccountRegistered,
		EntityID: account.ID,
		ActorID:  account.ID,
		Payload:  events.AccountRegisteredPayload{Email: email, Role: account.Role},
	})

	return account, nil
}

// Login authenticates in priority order: the configured bootstrap admin,
// then the account store. Pending and rejected accounts fail with their
// lifecycle errors before any password comparison happens.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.bootstrapHash != "" && email == s.bootstrapEmail {
		if err := auth.ComparePassword(s.bootstrapHash, password); err == nil {
			admin := s.bootstrapAccount()
			token, exp, err := s.tokenMgr.GenerateToken(admin)
			if err != nil {
				return nil, "", time.Time{}, err
			}
			return admin, token, exp, nil
		}
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	switch account.Status {
	case domain.AccountStatusPending:
		// the caller-visible error and the transient flag both derive
		// from the same pending status
		_ = s.flags.Raise(ctx, email)
		return nil, "", time.Time{}, domain.ErrPendingApproval
	case domain.AccountStatusRejected:
		reason := ""
		if account.RejectionReason != nil {
			reason = *account.RejectionReason
		}
		return nil, "", time.Time{}, &domain.RejectedError{Reason: reason}
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateToken(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// ApproveUser transitions an account to APPROVED, stamping who approved it
// and when. The current status is deliberately not checked first: an admin
// can re-approve or flip a rejected account, matching the permissive
// behavior of the surrounding product.
func (s *AuthService) ApproveUser(ctx context.Context, accountID string, acting *domain.Account) error {
	if !acting.IsAdmin() {
		return domain.ErrUnauthorized
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	now := time.Now()
	if err := s.accounts.SetApproved(ctx, accountID, acting.ID, now); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	s.recordTransition(ctx, accountID, "approved", acting.ID, map[string]any{"email": account.Email})
	s.publish(ctx, events.Event{
		Type:     events.EventAccountApproved,
		EntityID: accountID,
		ActorID:  acting.ID,
		Payload:  events.AccountApprovedPayload{Email: account.Email, ApprovedBy: acting.ID},
	})
	return nil
}

// RejectUser transitions an account to REJECTED with a required free-text
// reason. Same authorization and missing-guard semantics as ApproveUser.
func (s *AuthService) RejectUser(ctx context.Context, accountID, reason string, acting *domain.Account) error {
	if !acting.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(reason) == "" {
		return apperrors.NewValidationError("rejection reason required", nil)
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	if err := s.accounts.SetRejected(ctx, accountID, reason); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	s.recordTransition(ctx, accountID, "rejected", acting.ID, map[string]any{
		"email":  account.Email,
		"reason": reason,
	})
	s.publish(ctx, events.Event{
		Type:     events.EventAccountRejected,
		EntityID: accountID,
		ActorID:  acting.ID,
		Payload:  events.AccountRejectedPayload{Email: account.Email, Reason: reason},
	})
	return nil
}

// ListPendingAccounts returns registrations awaiting an admin decision.
func (s *AuthService) ListPendingAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.ListByStatus(ctx, domain.AccountStatusPending)
}

// PendingFlagActive reports whether the transient pending-approval flag is
// still raised for the given email.
func (s *AuthService) PendingFlagActive(ctx context.Context, email string) (bool, error) {
	return s.flags.Active(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// Logout clears the caller's session. Stateless JWTs make this a no-op on
// the server; it always succeeds and is idempotent.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// ResolveAccount loads the account behind a token subject, including the
// bootstrap admin which lives outside the store.
func (s *AuthService) ResolveAccount(ctx context.Context, id string) (*domain.Account, error) {
	if id == bootstrapAdminID {
		return s.bootstrapAccount(), nil
	}
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) bootstrapAccount() *domain.Account {
	return &domain.Account{
		ID:        bootstrapAdminID,
		Email:     s.bootstrapEmail,
		FirstName: "Admin",
		LastName:  "User",
		Role:      domain.AccountRoleAdmin,
		Status:    domain.AccountStatusApproved,
		CreatedAt: s.startedAt,
	}
}

// recordTransition appends to the audit trail; failures never block the
// triggering operation.
func (s *AuthService) recordTransition(ctx context.Context, accountID, action, actorID string, details map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Insert(ctx, &domain.AuditRecord{
		EntityType:  domain.AuditEntityAccount,
		EntityID:    accountID,
		Action:      action,
		PerformedBy: actorID,
		Details:     details,
	})
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
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
