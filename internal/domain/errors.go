// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input violates a field constraint.
	// Entity-specific validation errors wrap this sentinel so callers can
	// classify any of them with a single errors.Is check.
	ErrValidation = errors.New("validation failed")
)
