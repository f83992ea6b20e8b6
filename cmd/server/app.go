package main

import (
	"fmt"
	"log/slog"

	"github.com/practicum/shareit-api/internal/config"
	"github.com/practicum/shareit-api/internal/platform/memory"
	"github.com/practicum/shareit-api/internal/service"
	"github.com/practicum/shareit-api/internal/store"
)

// application holds all the shared application dependencies. Stores are
// constructed once here and injected into the services; their lifecycle is
// the process lifetime, so no teardown beyond process exit is needed.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore store.UserStore
	itemStore store.ItemStore

	userService service.UserService
	itemService service.ItemService
}

// newApplication wires up stores and services from the given configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	userStore := memory.NewUserStore()
	itemStore := memory.NewItemStore()

	userService, err := service.NewUserService(userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	itemService, err := service.NewItemService(itemStore, userService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		userStore:   userStore,
		itemStore:   itemStore,
		userService: userService,
		itemService: itemService,
	}, nil
}
