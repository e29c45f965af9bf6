package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest payload for sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID              string               `json:"id"`
	Email           string               `json:"email"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	Role            domain.AccountRole   `json:"role"`
	Status          domain.AccountStatus `json:"status"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time           `json:"approved_at,omitempty"`
	ApprovedBy      *string              `json:"approved_by,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// NewAccountResponse maps a domain account.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID,
		Email:           account.Email,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Role:            account.Role,
		Status:          account.Status,
		RejectionReason: account.RejectionReason,
		ApprovedAt:      account.ApprovedAt,
		ApprovedBy:      account.ApprovedBy,
		CreatedAt:       account.CreatedAt,
	}
}

// RejectAccountRequest payload for admin rejection.
type RejectAccountRequest struct {
	Reason string `json:"reason"`
}
