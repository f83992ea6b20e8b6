package memory

import (
	"context"
	"sync"

	"github.com/practicum/shareit-api/internal/domain"
	"github.com/practicum/shareit-api/internal/store"
)

// UserStore implements the store.UserStore interface with an in-memory map.
// It owns the set of registered users and assigns their IDs.
type UserStore struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	order  []int64
	nextID int64
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create. The counter guarantees strictly
// increasing IDs that are never reused after a deletion.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	stored.ID = s.nextID
	s.nextID++

	s.users[stored.ID] = &stored
	s.order = append(s.order, stored.ID)

	copied := stored
	return &copied, nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetAll implements store.UserStore.GetAll. Users come back in insertion order.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*domain.User, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.users[id]
		users = append(users, &copied)
	}
	return users, nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, store.ErrUserNotFound
	}

	stored := *user
	s.users[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

// Delete implements store.UserStore.Delete. Removing an absent ID is a
// silent no-op at this layer.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return nil
	}

	delete(s.users, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
