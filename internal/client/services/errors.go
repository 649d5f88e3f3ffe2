package services

import "errors"

var (
	// ErrInvalidCredentials: unknown email or wrong password at login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPasswordMismatch: password and confirmation differ at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrMalformedSessionState: persisted session data cannot be decoded.
	// CurrentUser reports such state as "no session" rather than returning it.
	ErrMalformedSessionState = errors.New("malformed session state")
	// ErrSuperseded: a newer login, register or logout was issued while this
	// call was waiting, so its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer session change")
)
