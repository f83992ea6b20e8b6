package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/practicum/shareit-api/internal/api"
	apiMiddleware "github.com/practicum/shareit-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	itemHandler := api.NewItemHandler(app.itemService, app.logger)
	identity := apiMiddleware.NewIdentityMiddleware(app.config.Server.IdentityHeader)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.GetAll)
		r.Get("/{userId}", userHandler.GetByID)
		r.Patch("/{userId}", userHandler.Update)
		r.Delete("/{userId}", userHandler.Delete)
	})

	r.Route("/items", func(r chi.Router) {
		// Public endpoints
		r.Get("/search", itemHandler.Search)
		r.Get("/{itemId}", itemHandler.GetByID)

		// Endpoints acting on behalf of the caller asserted by the
		// identity header
		r.Group(func(r chi.Router) {
			r.Use(identity.Require)
			r.Get("/", itemHandler.GetByOwner)
			r.Post("/", itemHandler.Create)
			r.Patch("/{itemId}", itemHandler.Update)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
