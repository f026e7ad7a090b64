package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/profile", h.profile)

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", h.listEntries)
			r.Post("/", h.createEntry)
			r.Get("/statistics", h.statistics)

			r.Get("/{entryID}", h.getEntry)
			r.Put("/{entryID}", h.updateEntry)
			r.Delete("/{entryID}", h.deleteEntry)
		})
	})

	return router
}
