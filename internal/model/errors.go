package model

import "errors"

// Sentinel errors for the three failure categories of the gate.
// The cmd layer maps these onto distinct process exit codes.
var (
	// ErrParse reports a missing or malformed results artifact.
	ErrParse = errors.New("cannot parse mutation results")

	// ErrConfig reports a missing or out-of-range gate configuration.
	ErrConfig = errors.New("invalid gate configuration")

	// ErrThresholdNotMet reports a well-formed run whose score is below
	// the configured minimum. A quality failure, not a system error.
	ErrThresholdNotMet = errors.New("mutation score below threshold")
)
