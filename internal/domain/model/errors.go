package model

import "errors"

// Error taxonomy of the risk analysis pipeline. Callers match with errors.Is;
// every error returned by the domain wraps exactly one of these.
var (
	// ErrInvalidInput marks a missing, malformed or out-of-range job variable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProfileUnavailable marks a failed or timed-out analysis profile fetch.
	ErrProfileUnavailable = errors.New("analysis profile unavailable")

	// ErrInvalidProfile marks a fetched profile that cannot be applied.
	ErrInvalidProfile = errors.New("invalid analysis profile")
)
