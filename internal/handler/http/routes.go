package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all routes and middleware into a chi router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withSession)

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/session", h.sessionInfo)
		r.Get("/activate", h.activate)
		r.Post("/activate/deny", h.denyActivation)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Post("/password", h.changePassword)
			r.Delete("/", h.deleteAccount)
		})
	})

	router.Get("/api/version", h.getServerVersion)

	return router
}
