package storage

import "errors"

// Sentinel kinds the repository layer maps driver errors onto. Handlers
// switch on these; anything not matched is a generic storage failure.
var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid id format")
	ErrDuplicateEmail = errors.New("email already exists")
)
