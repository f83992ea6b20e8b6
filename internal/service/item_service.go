package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/practicum/shareit-api/internal/domain"
	"github.com/practicum/shareit-api/internal/platform/logger"
	"github.com/practicum/shareit-api/internal/store"
)

// CreateItemParams carries the fields of an item creation request.
// Available is a pointer so a missing flag can be told apart from false.
type CreateItemParams struct {
	Name        string
	Description string
	Available   *bool
}

// UpdateItemParams carries the fields of a partial item update. Nil fields
// were omitted by the caller; blank strings are treated the same as omitted.
type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemService provides item-related operations.
type ItemService interface {
	// GetByID retrieves an item by its ID.
	// Returns store.ErrItemNotFound if no such item exists.
	GetByID(ctx context.Context, itemID int64) (*domain.Item, error)

	// GetByOwner returns the items owned by the given user, which may be
	// empty. Returns store.ErrUserNotFound if the user does not exist.
	GetByOwner(ctx context.Context, userID int64) ([]*domain.Item, error)

	// Search returns available items whose name or description contains the
	// given text, case-insensitively. Blank text yields an empty result
	// without consulting the store.
	Search(ctx context.Context, text string) ([]*domain.Item, error)

	// Create adds a new item owned by the given user. The user must exist;
	// availability, name and description are validated in that order and
	// the first failure wins.
	Create(ctx context.Context, userID int64, params CreateItemParams) (*domain.Item, error)

	// Update applies a partial update to an existing item. The acting user
	// and the item must both exist, and only the item's owner may mutate
	// it; a non-owner gets the same not-found failure as a missing item.
	Update(ctx context.Context, itemID, userID int64, params UpdateItemParams) (*domain.Item, error)
}

// itemServiceImpl implements the ItemService interface.
type itemServiceImpl struct {
	itemStore   store.ItemStore
	userService UserService
	logger      *slog.Logger
}

// NewItemService creates a new ItemService. Owner existence checks are
// delegated to the given UserService.
func NewItemService(itemStore store.ItemStore, userService UserService, log *slog.Logger) (ItemService, error) {
	if itemStore == nil {
		return nil, fmt.Errorf("%w: itemStore cannot be nil", domain.ErrValidation)
	}
	if userService == nil {
		return nil, fmt.Errorf("%w: userService cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &itemServiceImpl{
		itemStore:   itemStore,
		userService: userService,
		logger:      log.With(slog.String("component", "item_service")),
	}, nil
}

// GetByID implements ItemService.GetByID
func (s *itemServiceImpl) GetByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	return s.itemStore.GetByID(ctx, itemID)
}

// GetByOwner implements ItemService.GetByOwner
func (s *itemServiceImpl) GetByOwner(ctx context.Context, userID int64) ([]*domain.Item, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.itemStore.GetByOwner(ctx, userID)
}

// Search implements ItemService.Search
func (s *itemServiceImpl) Search(ctx context.Context, text string) ([]*domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*domain.Item{}, nil
	}
	return s.itemStore.Search(ctx, text)
}

// Create implements ItemService.Create
func (s *itemServiceImpl) Create(ctx context.Context, userID int64, params CreateItemParams) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	// Validation order matters: availability first, then name, then description.
	if params.Available == nil {
		log.Warn("item creation rejected", "user_id", userID, "reason", "missing availability")
		return nil, domain.ErrItemAvailabilityRequired
	}
	if strings.TrimSpace(params.Name) == "" {
		log.Warn("item creation rejected", "user_id", userID, "reason", "blank name")
		return nil, domain.ErrItemNameEmpty
	}
	if strings.TrimSpace(params.Description) == "" {
		log.Warn("item creation rejected", "user_id", userID, "reason", "blank description")
		return nil, domain.ErrItemDescriptionEmpty
	}

	item, err := s.itemStore.Create(ctx, &domain.Item{
		Name:        params.Name,
		Description: params.Description,
		Available:   *params.Available,
	}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	log.Info("item created", "item_id", item.ID, "owner_id", userID)
	return item, nil
}

// Update implements ItemService.Update
func (s *itemServiceImpl) Update(ctx context.Context, itemID, userID int64, params UpdateItemParams) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// A non-owner gets the same answer as a missing item so the response
	// leaks nothing about the item's existence.
	if item.OwnerID != userID {
		log.Warn("item update rejected", "item_id", itemID, "user_id", userID, "reason", "not the owner")
		return nil, store.ErrItemNotFound
	}

	if params.Name != nil && strings.TrimSpace(*params.Name) != "" {
		item.Name = *params.Name
	}
	if params.Description != nil && strings.TrimSpace(*params.Description) != "" {
		item.Description = *params.Description
	}
	if params.Available != nil {
		item.Available = *params.Available
	}

	updated, err := s.itemStore.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	log.Info("item updated", "item_id", updated.ID, "owner_id", userID)
	return updated, nil
}
