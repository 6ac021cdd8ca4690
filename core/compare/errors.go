package compare

import "errors"

var (
	// ErrMissingRole is returned when a required column role is not selected.
	ErrMissingRole = errors.New("required column role is not set")
	// ErrColumnNotFound is returned when a required role names a column the table does not have.
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateLookupID is returned under DuplicateReject when the lookup table repeats an id.
	ErrDuplicateLookupID = errors.New("duplicate id in lookup table")
	// ErrInvalidPolicy is returned for an unknown duplicate policy.
	ErrInvalidPolicy = errors.New("invalid duplicate policy")
	// ErrRowOutOfRange is returned when a detail is requested for a row that does not exist.
	ErrRowOutOfRange = errors.New("row index out of range")
)
