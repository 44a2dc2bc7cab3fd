package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// requireAuth admits only requests whose session carries an established
// identity and places the user id into the request context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := sessionFromContext(ctx)

		userID, trusted, err := h.trust.UserID(ctx, sess)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.requireAuth").Msg("cannot read session identity")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if !trusted {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userIDCtxKey, userID)))
	})
}
