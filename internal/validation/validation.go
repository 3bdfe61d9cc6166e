// Package validation checks the shape of registration and login input before
// any side effect occurs. Checks are pure functions of their input; errors
// are keyed by field so the delivery layer can surface them per-field.
package validation

import (
	"net/mail"
	"strings"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 30
	passwordMinLen = 6
)

// RegisterInput is the raw registration payload.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// LoginInput is the raw login payload.
type LoginInput struct {
	Email    string
	Password string
}

// Result carries field-keyed validation messages. The map is empty exactly
// when the input is valid.
type Result struct {
	FieldErrors map[string]string
}

// Valid reports whether the input passed every check.
func (r Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// Register validates registration input.
func Register(in RegisterInput) Result {
	errs := make(map[string]string)

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs["name"] = "Name field is required"
	case len(name) < nameMinLen || len(name) > nameMaxLen:
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	validateEmail(in.Email, errs)

	switch {
	case in.Password == "":
		errs["password"] = "Password field is required"
	case len(in.Password) < passwordMinLen:
		errs["password"] = "Password must be at least 6 characters"
	}

	switch {
	case in.PasswordConfirmation == "":
		errs["password_confirmation"] = "Confirm password field is required"
	case in.Password != in.PasswordConfirmation:
		errs["password_confirmation"] = "Passwords must match"
	}

	return Result{FieldErrors: errs}
}

// Login validates login input.
func Login(in LoginInput) Result {
	errs := make(map[string]string)

	validateEmail(in.Email, errs)

	if in.Password == "" {
		errs["password"] = "Password field is required"
	}

	return Result{FieldErrors: errs}
}

func validateEmail(email string, errs map[string]string) {
	if email == "" {
		errs["email"] = "Email field is required"
		return
	}
	if !wellFormedEmail(email) {
		errs["email"] = "Email is invalid"
	}
}

// wellFormedEmail accepts addresses with a dotted domain. Display names and
// comments are rejected even though the address grammar allows them.
func wellFormedEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
