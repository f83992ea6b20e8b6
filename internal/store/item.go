package store

import (
	"context"

	"github.com/practicum/shareit-api/internal/domain"
)

// ItemStore defines the interface for item storage.
type ItemStore interface {
	// Create assigns the next ID to the item, sets its owner, inserts it
	// into the primary collection and the owner's secondary index, and
	// returns the stored copy. The ID assignment and both insertions appear
	// atomic to concurrent callers.
	Create(ctx context.Context, item *domain.Item, ownerID int64) (*domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// GetByOwner returns all items owned by the given user in insertion
	// order. An owner with no items yields an empty slice, not an error.
	GetByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)

	// Search returns all available items whose name or description contains
	// the given text, case-insensitively. Blank-text short-circuiting is the
	// calling service's responsibility.
	Search(ctx context.Context, text string) ([]*domain.Item, error)

	// Update replaces the stored item that has the same ID. The owner is
	// never changed by an update.
	// Returns ErrItemNotFound if the item does not exist.
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
}
