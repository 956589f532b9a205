package repository

import "errors"

// Sentinel errors the services translate into their API-facing errors.
var (
	// ErrRecordNotFound signals that no record matched the requested id
	// and owner.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateRecord signals an insert that would violate a uniqueness
	// rule (currently only the teacher email).
	ErrDuplicateRecord = errors.New("duplicate record")
)
