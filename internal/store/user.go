package store

import (
	"context"

	"github.com/practicum/shareit-api/internal/domain"
)

// UserStore defines the interface for user storage.
type UserStore interface {
	// Create assigns the next ID to the user, saves it, and returns the
	// stored copy. IDs are strictly increasing and never reused within a
	// process run, even after deletions.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetAll returns all stored users in insertion order.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// Update replaces the stored user that has the same ID.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)

	// Delete removes the user with the given ID if present. Deleting an
	// absent ID is a no-op at this layer; the service layer is responsible
	// for turning "does not exist" into a caller-visible error.
	Delete(ctx context.Context, id int64) error
}
