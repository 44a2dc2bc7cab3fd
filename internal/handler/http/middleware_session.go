package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/session"
)

// withSession opens the server-side session named by the session cookie,
// attaches cookie synchronisation so identifier changes reach the client,
// and gives an untrusted session one autologin attempt before the handler
// runs. Every route sits below this middleware.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		jar := session.NewJar(w, r, r.TLS != nil)

		presented, _ := jar.Get(h.sessionCookieName)
		opened, err := h.sessions.Open(ctx, presented)
		if err != nil {
			log.Err(err).Str("func", "Handler.withSession").Msg("cannot open session")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		sess := session.WithCookieSync(opened, jar, h.sessionCookieName, h.sessionTTL)
		if sess.ID() != presented {
			jar.Set(h.sessionCookieName, sess.ID(), h.sessionTTL)
		}

		// Infra trouble during autologin must not lock guests out of
		// public routes. The request proceeds untrusted.
		if _, err := h.services.Login.DoAutoLogin(ctx, sess, jar); err != nil {
			log.Warn().Err(err).Str("func", "Handler.withSession").Msg("autologin attempt failed")
		}

		ctx = context.WithValue(ctx, sessionCtxKey, sess)
		ctx = context.WithValue(ctx, jarCtxKey, jar)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
