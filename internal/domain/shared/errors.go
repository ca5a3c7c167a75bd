// Package shared contains common domain types, errors, and events that are
// used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation   = errors.New("validation error")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyValue   = errors.New("value cannot be empty")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "profile", "social", "sharecode"
	Op      string // Operation that failed, e.g., "SignUp", "Follow"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Profile domain errors
var (
	ErrProfileNotFound      = NewDomainError("profile", "Find", ErrNotFound, "profile not found")
	ErrProfileAlreadyExists = NewDomainError("profile", "SignUp", ErrAlreadyExists, "username is already taken")
	ErrInvalidCredentials   = NewDomainError("profile", "LogIn", ErrUnauthorized, "wrong password")
	ErrMissingCredentials   = NewDomainError("profile", "Validate", ErrEmptyValue, "username and password are required")
	ErrNoActiveSession      = NewDomainError("profile", "Session", ErrNotFound, "no active session")
)

// Share token / follow protocol errors
var (
	ErrInvalidToken = NewDomainError("sharecode", "Decode", ErrInvalidInput, "malformed share token")
	ErrSelfFollow   = NewDomainError("social", "Follow", ErrInvalidInput, "cannot follow yourself")
)

// External service errors
var (
	ErrMirrorUnavailable = NewDomainError("mirror", "Request", ErrServiceUnavailable, "remote profile store is unreachable")
	ErrTutorUnavailable  = NewDomainError("tutor", "Explain", ErrExternalService, "explanation service is unavailable")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue)
}

// IsExternalService checks if the error came from an external service.
// These degrade the application to local-only mode and are never fatal.
func IsExternalService(err error) bool {
	return errors.Is(err, ErrExternalService) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrTimeout)
}
