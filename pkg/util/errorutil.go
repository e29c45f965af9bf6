package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/firmdesk/practice-service/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError, mapping the
// account-lifecycle and integrity-check taxonomy to HTTP semantics.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var rejected *domain.RejectedError
	if errors.As(err, &rejected) {
		return &DomainError{
			Code:       "ACCOUNT_REJECTED",
			Message:    rejected.Error(),
			HTTPStatus: http.StatusForbidden,
			Details:    map[string]any{"reason": rejected.Reason},
		}
	}

	var unreadable *domain.UnreadableFileError
	if errors.As(err, &unreadable) {
		return &DomainError{
			Code:       "UNREADABLE_FILE",
			Message:    unreadable.Error(),
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
		}
	}

	var hashErr *domain.HashComputationError
	if errors.As(err, &hashErr) {
		return &DomainError{
			Code:       "HASH_COMPUTATION_FAILED",
			Message:    hashErr.Error(),
			HTTPStatus: http.StatusBadGateway,
			Err:        err,
		}
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return &DomainError{Code: "DUPLICATE_EMAIL", Message: err.Error(), HTTPStatus: http.StatusConflict}
	case errors.Is(err, domain.ErrPendingApproval):
		return &DomainError{Code: "PENDING_APPROVAL", Message: err.Error(), HTTPStatus: http.StatusForbidden}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &DomainError{Code: "INVALID_CREDENTIALS", Message: err.Error(), HTTPStatus: http.StatusUnauthorized}
	case errors.Is(err, domain.ErrUnauthorized):
		return &DomainError{Code: "FORBIDDEN", Message: err.Error(), HTTPStatus: http.StatusForbidden}
	case errors.Is(err, domain.ErrAccountNotFound):
		return &DomainError{Code: "NOT_FOUND", Message: err.Error(), HTTPStatus: http.StatusNotFound}
	case errors.Is(err, pgx.ErrNoRows):
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}

	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
