package domain

import "fmt"

// User-specific validation errors
var (
	// ErrUserEmailEmpty is returned when a user's email is blank.
	ErrUserEmailEmpty = fmt.Errorf("%w: email must be provided", ErrValidation)

	// ErrUserEmailTaken is returned when a user's email is already in use
	// by another user. Email comparison is case-sensitive.
	ErrUserEmailTaken = fmt.Errorf("%w: email is already in use", ErrValidation)
)

// User represents a registered user of the item-sharing service.
// The ID is assigned by the store on creation and is immutable thereafter.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
