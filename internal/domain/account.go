package domain

import "time"

// AccountRole enumerates firm user roles.
type AccountRole string

const (
	AccountRoleAttorney  AccountRole = "ATTORNEY"
	AccountRoleParalegal AccountRole = "PARALEGAL"
	AccountRoleAdmin     AccountRole = "ADMIN"
)

// AccountStatus enumerates approval lifecycle states. A new registration
// starts PENDING; APPROVED and REJECTED are terminal.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "PENDING"
	AccountStatusApproved AccountStatus = "APPROVED"
	AccountStatusRejected AccountStatus = "REJECTED"
)

// Account models a registered firm user subject to admin approval.
type Account struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	PasswordHash    string
	Role            AccountRole
	Status          AccountStatus
	RejectionReason *string
	ApprovedAt      *time.Time
	ApprovedBy      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == AccountRoleAdmin
}
