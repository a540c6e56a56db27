package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrNotFound          = errors.New("record not found")
	ErrKeyNotFound       = errors.New("key not found")
	ErrInvalidPreference = errors.New("invalid preference value")
	ErrUnknownPeriod     = errors.New("unknown reporting period")
	ErrUnknownJob        = errors.New("unknown job")

	ErrActionInFlight       = errors.New("action already in flight")
	ErrConfirmationPending  = errors.New("another confirmation is pending")
	ErrConfirmationNotFound = errors.New("confirmation not found or expired")
	ErrConfirmationMismatch = errors.New("confirmation id does not match pending request")
)
