package domain

import "fmt"

// Item-specific validation errors
var (
	// ErrItemAvailabilityRequired is returned when an item is created
	// without an availability flag.
	ErrItemAvailabilityRequired = fmt.Errorf("%w: item availability must be specified", ErrValidation)

	// ErrItemNameEmpty is returned when an item's name is blank.
	ErrItemNameEmpty = fmt.Errorf("%w: item name must not be blank", ErrValidation)

	// ErrItemDescriptionEmpty is returned when an item's description is blank.
	ErrItemDescriptionEmpty = fmt.Errorf("%w: item description must not be blank", ErrValidation)
)

// Item represents a thing a user offers for sharing.
// OwnerID is set once at creation from the acting caller's identity and
// never changes afterwards. Only available items show up in search results.
type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}
