package errs

import "errors"

// Sentinel errors for the scheduling engine's input taxonomy. These are caller
// faults and map to 4xx at the HTTP boundary; empty results are not errors.
var (
	// Range / window errors
	ErrInvalidRange    = errors.New("invalid time range")
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrInvalidDuration = errors.New("invalid duration")

	// Suggestion errors
	ErrEmptyCandidatePool = errors.New("empty candidate pool")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
