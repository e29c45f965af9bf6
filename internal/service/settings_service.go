package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/repository"
	apperrors "github.com/firmdesk/practice-service/pkg/util"
)

// SettingsService coordinates firm-wide settings.
type SettingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService constructs the service.
func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// GetSettings returns the firm settings, or sane defaults when none have
// been stored yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.FirmSettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.FirmSettings{
				BillingRate:        350,
				DefaultDueDays:     30,
				EmailNotifications: true,
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings stores the firm settings. Admin only.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings *domain.FirmSettings, acting *domain.Account) error {
	if !acting.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if settings.BillingRate < 0 {
		return apperrors.NewValidationError("billing rate must not be negative", nil)
	}
	if settings.DefaultDueDays <= 0 {
		settings.DefaultDueDays = 30
	}
	return s.settings.Upsert(ctx, settings)
}

// GetPasswordPolicy returns the stored policy, or the defaults.
func (s *SettingsService) GetPasswordPolicy(ctx context.Context) (*domain.PasswordPolicy, error) {
	policy, err := s.settings.GetPasswordPolicy(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.PasswordPolicy{
				MinLength:        8,
				RequireUppercase: true,
				RequireLowercase: true,
				RequireNumbers:   true,
				MaxAttempts:      5,
				LockoutMinutes:   15,
			}, nil
		}
		return nil, err
	}
	return policy, nil
}

// UpdatePasswordPolicy stores the password policy. Admin only.
func (s *SettingsService) UpdatePasswordPolicy(ctx context.Context, policy *domain.PasswordPolicy, acting *domain.Account) error {
	if !acting.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if policy.MinLength < 6 {
		return apperrors.NewValidationError("minimum length must be at least 6", nil)
	}
	return s.settings.UpsertPasswordPolicy(ctx, policy)
}
