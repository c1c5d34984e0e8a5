package models

import "errors"

// Sentinel errors for the client-facing error taxonomy. Services wrap
// these with context; handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)
