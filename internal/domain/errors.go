package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the account approval lifecycle.
var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrPendingApproval    = errors.New("account pending approval")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("admin role required")
	ErrAccountNotFound    = errors.New("account not found")
)

// RejectedError indicates a sign-in attempt against a rejected account.
// It carries the reason recorded when the account was rejected.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return "account rejected: no reason provided"
	}
	return fmt.Sprintf("account rejected: %s", e.Reason)
}

// UnreadableFileError indicates the candidate file's bytes could not be read
// during integrity verification.
type UnreadableFileError struct {
	Err error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("failed to read file: %v", e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }

// HashComputationError indicates a content digest could not be computed,
// including failure to fetch the recorded file's bytes for hashing.
type HashComputationError struct {
	Err error
}

func (e *HashComputationError) Error() string {
	return fmt.Sprintf("failed to compute content hash: %v", e.Err)
}

func (e *HashComputationError) Unwrap() error { return e.Err }
