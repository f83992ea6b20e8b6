package api

import (
	"errors"
	"net/http"

	"github.com/practicum/shareit-api/internal/domain"
	"github.com/practicum/shareit-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. Validation failures map to 400; an ownership failure
// surfaces as 404 because the service layer deliberately reports it as
// not-found.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, domain.ErrUserEmailEmpty):
		return "Email must be provided"

	case errors.Is(err, domain.ErrUserEmailTaken):
		return "Email is already in use"

	case errors.Is(err, domain.ErrItemAvailabilityRequired):
		return "Item availability must be specified"

	case errors.Is(err, domain.ErrItemNameEmpty):
		return "Item name must not be blank"

	case errors.Is(err, domain.ErrItemDescriptionEmpty):
		return "Item description must not be blank"

	default:
		return "An unexpected error occurred"
	}
}
