// Package apperrors holds the error kinds surfaced by the account and message
// services. Callers match them with errors.Is; the wrapped text is free-form.
package apperrors

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameConflict   = errors.New("username already exists")
	ErrAuthFailure        = errors.New("authentication failed")
	ErrInvalidMessage     = errors.New("invalid message")
)
