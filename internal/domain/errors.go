package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrNoContainer = errors.New("recipe container not found")
	ErrNoControl   = errors.New("control not found")
)
