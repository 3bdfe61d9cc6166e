package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. Details carries field-keyed
// messages when the error relates to specific input fields.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]string
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
func NewDomainError(code, message string, status int, details map[string]string) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationFailed wraps per-field validation messages.
func NewValidationFailed(fields map[string]string) error {
	return NewDomainError("VALIDATION_FAILED", "validation failed", http.StatusBadRequest, fields)
}

// NewDuplicateEmail reports a registration against an already-taken email.
func NewDuplicateEmail() error {
	return NewDomainError("DUPLICATE_EMAIL", "email already exists", http.StatusBadRequest,
		map[string]string{"email": "Email already exists"})
}

// NewIdentityNotFound reports a login against an unknown email.
func NewIdentityNotFound() error {
	return NewDomainError("IDENTITY_NOT_FOUND", "user not found", http.StatusNotFound,
		map[string]string{"email": "User not found"})
}

// NewInvalidCredentials reports a password mismatch on login.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "invalid credentials", http.StatusBadRequest,
		map[string]string{"password": "Password incorrect"})
}

func NewUnauthenticated(message string) error {
	return NewDomainError("UNAUTHENTICATED", message, http.StatusUnauthorized, nil)
}

// NewInternalError hides the underlying cause from callers; the wrapped error
// is kept for server-side logging only.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError converts generic errors to DomainError.
func MapError(err error) error {
	return ToDomainError(err)
}
