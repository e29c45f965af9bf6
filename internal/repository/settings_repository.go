package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/practice-service/internal/domain"
)

// firm settings are a single row keyed by a fixed id
const settingsRowID = "default"

// SettingsRepository defines persistence access for firm-wide settings.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.FirmSettings, error)
	Upsert(ctx context.Context, settings *domain.FirmSettings) error
	GetPasswordPolicy(ctx context.Context) (*domain.PasswordPolicy, error)
	UpsertPasswordPolicy(ctx context.Context, policy *domain.PasswordPolicy) error
}

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a Postgres-backed implementation.
func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.FirmSettings, error) {
	const query = `
        SELECT id, company_name, address, phone, email, billing_rate, default_due_days,
               email_notifications, automatic_backups, updated_at
        FROM firm_settings WHERE id=$1`

	var settings domain.FirmSettings
	if err := r.pool.QueryRow(ctx, query, settingsRowID).Scan(
		&settings.ID,
		&settings.CompanyName,
		&settings.Address,
		&settings.Phone,
		&settings.Email,
		&settings.BillingRate,
		&settings.DefaultDueDays,
		&settings.EmailNotifications,
		&settings.AutomaticBackups,
		&settings.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *domain.FirmSettings) error {
	const query = `
        INSERT INTO firm_settings (id, company_name, address, phone, email, billing_rate,
                                   default_due_days, email_notifications, automatic_backups)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE
        SET company_name=EXCLUDED.company_name, address=EXCLUDED.address,
            phone=EXCLUDED.phone, email=EXCLUDED.email,
            billing_rate=EXCLUDED.billing_rate, default_due_days=EXCLUDED.default_due_days,
            email_notifications=EXCLUDED.email_notifications,
            automatic_backups=EXCLUDED.automatic_backups, updated_at=NOW()
        RETURNING updated_at`

	settings.ID = settingsRowID
	return r.pool.QueryRow(ctx, query,
		settings.ID,
		settings.CompanyName,
		settings.Address,
		settings.Phone,
		settings.Email,
		settings.BillingRate,
		settings.DefaultDueDays,
		settings.EmailNotifications,
		settings.AutomaticBackups,
	).Scan(&settings.UpdatedAt)
}

func (r *settingsRepository) GetPasswordPolicy(ctx context.Context) (*domain.PasswordPolicy, error) {
	const query = `
        SELECT min_length, require_uppercase, require_lowercase, require_numbers,
               require_special_chars, expiration_days, prevent_reuse_count,
               max_attempts, lockout_minutes
        FROM password_policy WHERE id=$1`

	var policy domain.PasswordPolicy
	if err := r.pool.QueryRow(ctx, query, settingsRowID).Scan(
		&policy.MinLength,
		&policy.RequireUppercase,
		&policy.RequireLowercase,
		&policy.RequireNumbers,
		&policy.RequireSpecialChars,
		&policy.ExpirationDays,
		&policy.PreventReuseCount,
		&policy.MaxAttempts,
		&policy.LockoutMinutes,
	); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *settingsRepository) UpsertPasswordPolicy(ctx context.Context, policy *domain.PasswordPolicy) error {
	const query = `
        INSERT INTO password_policy (id, min_length, require_uppercase, require_lowercase,
                                     require_numbers, require_special_chars, expiration_days,
                                     prevent_reuse_count, max_attempts, lockout_minutes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (id) DO UPDATE
        SET min_length=EXCLUDED.min_length, require_uppercase=EXCLUDED.require_uppercase,
            require_lowercase=EXCLUDED.require_lowercase, require_numbers=EXCLUDED.require_numbers,
            require_special_chars=EXCLUDED.require_special_chars,
            expiration_days=EXCLUDED.expiration_days,
            prevent_reuse_count=EXCLUDED.prevent_reuse_count,
            max_attempts=EXCLUDED.max_attempts, lockout_minutes=EXCLUDED.lockout_minutes`

	_, err := r.pool.Exec(ctx, query,
		settingsRowID,
		policy.MinLength,
		policy.RequireUppercase,
		policy.RequireLowercase,
		policy.RequireNumbers,
		policy.RequireSpecialChars,
		policy.ExpirationDays,
		policy.PreventReuseCount,
		policy.MaxAttempts,
		policy.LockoutMinutes,
	)
	return err
}
