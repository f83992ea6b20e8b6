package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/practicum/shareit-api/internal/domain"
	"github.com/practicum/shareit-api/internal/store"
)

// ItemStore implements the store.ItemStore interface with an in-memory map.
// Besides the primary ID-keyed map it maintains a denormalized secondary
// index from owner ID to that owner's items. Both structures share the same
// *domain.Item values, so an in-place update through the primary map keeps
// the index consistent without a second write.
type ItemStore struct {
	mu      sync.Mutex
	items   map[int64]*domain.Item
	byOwner map[int64][]*domain.Item
	order   []int64
	nextID  int64
}

// NewItemStore creates an empty in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items:   make(map[int64]*domain.Item),
		byOwner: make(map[int64][]*domain.Item),
		nextID:  1,
	}
}

// Ensure ItemStore implements store.ItemStore interface
var _ store.ItemStore = (*ItemStore)(nil)

// Create implements store.ItemStore.Create. ID assignment, the primary map
// insert and the index append all happen under one lock acquisition.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item, ownerID int64) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	stored.ID = s.nextID
	s.nextID++
	stored.OwnerID = ownerID

	s.items[stored.ID] = &stored
	s.byOwner[ownerID] = append(s.byOwner[ownerID], &stored)
	s.order = append(s.order, stored.ID)

	copied := stored
	return &copied, nil
}

// GetByID implements store.ItemStore.GetByID
func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}

	copied := *item
	return &copied, nil
}

// GetByOwner implements store.ItemStore.GetByOwner. An unknown owner yields
// an empty slice rather than an error.
func (s *ItemStore) GetByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.byOwner[ownerID]
	items := make([]*domain.Item, 0, len(owned))
	for _, item := range owned {
		copied := *item
		items = append(items, &copied)
	}
	return items, nil
}

// Search implements store.ItemStore.Search. Matching is case-insensitive
// over name and description; unavailable items never match.
func (s *ItemStore) Search(ctx context.Context, text string) ([]*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(text)
	matches := make([]*domain.Item, 0)
	for _, id := range s.order {
		item := s.items[id]
		if !item.Available {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			copied := *item
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}

// Update implements store.ItemStore.Update. The stored value is mutated in
// place so the owner index keeps pointing at current data; the owner itself
// is never changed.
func (s *ItemStore) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[item.ID]
	if !ok {
		return nil, store.ErrItemNotFound
	}

	stored.Name = item.Name
	stored.Description = item.Description
	stored.Available = item.Available

	copied := *stored
	return &copied, nil
}
