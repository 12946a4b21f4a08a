package service

import "errors"

// Error kinds. Operations wrap these with fmt.Errorf so callers can classify
// with errors.Is while keeping a human-readable message.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("not authorized")
	ErrUpstream     = errors.New("payment provider failure")
)
