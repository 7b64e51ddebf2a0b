package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidBackend = errors.New("invalid dictionary backend")
	ErrValidation     = errors.New("validation error")
)
