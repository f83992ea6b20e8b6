package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/practicum/shareit-api/internal/api/shared"
)

// IdentityMiddleware extracts the acting user's ID from a request header and
// places it in the request context. The header value is trusted as-is: this
// service performs no authentication, so the transport in front of it owns
// any stronger identity guarantees.
type IdentityMiddleware struct {
	header string
}

// NewIdentityMiddleware creates an IdentityMiddleware reading the given
// header (normally X-Sharer-User-Id).
func NewIdentityMiddleware(header string) *IdentityMiddleware {
	return &IdentityMiddleware{header: header}
}

// Require rejects requests without a well-formed identity header and stores
// the asserted user ID in the context for downstream handlers. Whether that
// user actually exists is the service layer's concern.
func (m *IdentityMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(m.header)
		if raw == "" {
			slog.Debug("request missing identity header", slog.String("header", m.header))
			shared.RespondWithError(w, r, http.StatusBadRequest, m.header+" header is required")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			slog.Debug("request carries malformed identity header",
				slog.String("header", m.header),
				slog.String("value", raw))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+m.header+" header value")
			return
		}

		ctx := shared.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
