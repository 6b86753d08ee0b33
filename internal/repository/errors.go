package repository

import "errors"

// Sentinel errors shared by all repositories. Services translate these into
// user-facing failures; anything else is an infrastructure fault.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)
