package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// FirmSettingsRequest payload for updating firm settings.
type FirmSettingsRequest struct {
	CompanyName        string  `json:"company_name"`
	Address            string  `json:"address"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	BillingRate        float64 `json:"billing_rate"`
	DefaultDueDays     int     `json:"default_due_days"`
	EmailNotifications bool    `json:"email_notifications"`
	AutomaticBackups   bool    `json:"automatic_backups"`
}

// ToDomain converts the request into domain settings.
func (r FirmSettingsRequest) ToDomain() *domain.FirmSettings {
	return &domain.FirmSettings{
		CompanyName:        r.CompanyName,
		Address:            r.Address,
		Phone:              r.Phone,
		Email:              r.Email,
		BillingRate:        r.BillingRate,
		DefaultDueDays:     r.DefaultDueDays,
		EmailNotifications: r.EmailNotifications,
		AutomaticBackups:   r.AutomaticBackups,
	}
}

// FirmSettingsResponse response.
type FirmSettingsResponse struct {
	CompanyName        string    `json:"company_name"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	BillingRate        float64   `json:"billing_rate"`
	DefaultDueDays     int       `json:"default_due_days"`
	EmailNotifications bool      `json:"email_notifications"`
	AutomaticBackups   bool      `json:"automatic_backups"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewFirmSettingsResponse maps domain settings.
func NewFirmSettingsResponse(settings *domain.FirmSettings) FirmSettingsResponse {
	return FirmSettingsResponse{
		CompanyName:        settings.CompanyName,
		Address:            settings.Address,
		Phone:              settings.Phone,
		Email:              settings.Email,
		BillingRate:        settings.BillingRate,
		DefaultDueDays:     settings.DefaultDueDays,
		EmailNotifications: settings.EmailNotifications,
		AutomaticBackups:   settings.AutomaticBackups,
		UpdatedAt:          settings.UpdatedAt,
	}
}

// PasswordPolicyRequest payload, also used as the response shape.
type PasswordPolicyRequest struct {
	MinLength           int  `json:"min_length"`
	RequireUppercase    bool `json:"require_uppercase"`
	RequireLowercase    bool `json:"require_lowercase"`
	RequireNumbers      bool `json:"require_numbers"`
	RequireSpecialChars bool `json:"require_special_chars"`
	ExpirationDays      int  `json:"expiration_days"`
	PreventReuseCount   int  `json:"prevent_reuse_count"`
	MaxAttempts         int  `json:"max_attempts"`
	LockoutMinutes      int  `json:"lockout_minutes"`
}

// ToDomain converts the request into a domain policy.
func (r PasswordPolicyRequest) ToDomain() *domain.PasswordPolicy {
	return &domain.PasswordPolicy{
		MinLength:           r.MinLength,
		RequireUppercase:    r.RequireUppercase,
		RequireLowercase:    r.RequireLowercase,
		RequireNumbers:      r.RequireNumbers,
		RequireSpecialChars: r.RequireSpecialChars,
		ExpirationDays:      r.ExpirationDays,
		PreventReuseCount:   r.PreventReuseCount,
		MaxAttempts:         r.MaxAttempts,
		LockoutMinutes:      r.LockoutMinutes,
	}
}

// NewPasswordPolicyResponse maps a domain policy.
func NewPasswordPolicyResponse(policy *domain.PasswordPolicy) PasswordPolicyRequest {
	return PasswordPolicyRequest{
		MinLength:           policy.MinLength,
		RequireUppercase:    policy.RequireUppercase,
		RequireLowercase:    policy.RequireLowercase,
		RequireNumbers:      policy.RequireNumbers,
		RequireSpecialChars: policy.RequireSpecialChars,
		ExpirationDays:      policy.ExpirationDays,
		PreventReuseCount:   policy.PreventReuseCount,
		MaxAttempts:         policy.MaxAttempts,
		LockoutMinutes:      policy.LockoutMinutes,
	}
}
