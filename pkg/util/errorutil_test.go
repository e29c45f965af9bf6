package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdesk/practice-service/internal/domain"
)

func TestToDomainErrorLifecycle(t *testing.T) {
	de := ToDomainError(domain.ErrDuplicateEmail)
	assert.Equal(t, "DUPLICATE_EMAIL", de.Code)
	assert.Equal(t, http.StatusConflict, de.HTTPStatus)

	de = ToDomainError(domain.ErrPendingApproval)
	assert.Equal(t, "PENDING_APPROVAL", de.Code)
	assert.Equal(t, http.StatusForbidden, de.HTTPStatus)

	de = ToDomainError(domain.ErrInvalidCredentials)
	assert.Equal(t, "INVALID_CREDENTIALS", de.Code)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)

	de = ToDomainError(domain.ErrUnauthorized)
	assert.Equal(t, http.StatusForbidden, de.HTTPStatus)

	de = ToDomainError(domain.ErrAccountNotFound)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainErrorRejectionCarriesReason(t *testing.T) {
	de := ToDomainError(&domain.RejectedError{Reason: "insufficient credentials"})
	assert.Equal(t, "ACCOUNT_REJECTED", de.Code)
	assert.Equal(t, http.StatusForbidden, de.HTTPStatus)
	assert.Equal(t, "insufficient credentials", de.Details["reason"])
	assert.Contains(t, de.Message, "insufficient credentials")
}

func TestToDomainErrorIntegrity(t *testing.T) {
	de := ToDomainError(&domain.UnreadableFileError{Err: errors.New("short read")})
	assert.Equal(t, "UNREADABLE_FILE", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)

	de = ToDomainError(&domain.HashComputationError{Err: errors.New("fetch failed")})
	assert.Equal(t, "HASH_COMPUTATION_FAILED", de.Code)
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus)
}

func TestToDomainErrorPassThrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "email"})
	de := ToDomainError(original)
	require.NotNil(t, de)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, "email", de.Details["field"])
}

func TestToDomainErrorFallbacks(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)

	de = ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)

	assert.Nil(t, ToDomainError(nil))
}
