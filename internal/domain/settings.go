package domain

import "time"

// FirmSettings is the singleton firm-wide configuration record.
type FirmSettings struct {
	ID                 string
	CompanyName        string
	Address            string
	Phone              string
	Email              string
	BillingRate        float64
	DefaultDueDays     int
	EmailNotifications bool
	AutomaticBackups   bool
	UpdatedAt          time.Time
}

// PasswordPolicy captures the firm's password requirements.
type PasswordPolicy struct {
	MinLength           int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
	ExpirationDays      int
	PreventReuseCount   int
	MaxAttempts         int
	LockoutMinutes      int
}
