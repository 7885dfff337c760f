// Package common defines shared constants and sentinel errors used across
// the admin CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoToken      = errors.New("no access token found in server response")

	// Validation errors, surfaced verbatim as field-level messages.
	ErrInvalidPhone = errors.New("please enter a valid 10-digit phone number")
	ErrInvalidOTP   = errors.New("please enter the OTP code")

	// Import errors.
	ErrEmptyWorkbook = errors.New("the file is empty or could not be read")
	ErrNothingToSubmit = errors.New("no parsed rows to submit")
)
