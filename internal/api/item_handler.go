package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/practicum/shareit-api/internal/api/shared"
	"github.com/practicum/shareit-api/internal/platform/logger"
	"github.com/practicum/shareit-api/internal/service"
)

// ItemHandler handles item-related HTTP requests. Endpoints that act on
// behalf of a user read the asserted identity from the request context,
// where the identity middleware placed it.
type ItemHandler struct {
	itemService service.ItemService
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(itemService service.ItemService, log *slog.Logger) *ItemHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ItemHandler{
		itemService: itemService,
		logger:      log.With(slog.String("component", "item_handler")),
	}
}

// GetByID handles GET /items/{itemId} requests.
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemIDFromPath(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(r.Context(), itemID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// GetByOwner handles GET /items requests, listing the items owned by the
// user the identity header asserts.
func (h *ItemHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	items, err := h.itemService.GetByOwner(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// Search handles GET /items/search?text=... requests. Blank text yields an
// empty list.
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")

	items, err := h.itemService.Search(r.Context(), text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// Create handles POST /items requests.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := h.itemService.Create(r.Context(), userID, service.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("item created",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", userID))
	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// Update handles PATCH /items/{itemId} requests. A caller who is not the
// item's owner gets a 404, indistinguishable from a missing item.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	itemID, ok := h.itemIDFromPath(w, r)
	if !ok {
		return
	}

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := h.itemService.Update(r.Context(), itemID, userID, service.UpdateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("item updated",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// itemIDFromPath parses the {itemId} URL parameter, responding with 400 on a
// malformed value.
func (h *ItemHandler) itemIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "itemId")
	itemID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || itemID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID format")
		return 0, false
	}
	return itemID, true
}

// callerID reads the asserted user ID the identity middleware stored in the
// context. Its absence on a guarded route is a server misconfiguration.
func (h *ItemHandler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		h.logger.Warn("acting user ID missing from request context")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Caller identity is required")
		return 0, false
	}
	return userID, true
}
