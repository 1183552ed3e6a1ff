package cbt

import "errors"

var (
	// ErrValidation indicates a caller-supplied argument failed a guard check.
	ErrValidation = errors.New("validation error")
)
