package session

import "errors"

var (
	// ErrSessionNotFound indicates the session doesn't exist in the registry.
	ErrSessionNotFound = errors.New("session not found")
)
