package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)

		r.Get("/news", h.news)
		r.Get("/games", h.games)
		r.Get("/version", h.getServerVersion)
	})

	// session-gated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/protected", h.protected)
		r.Get("/profile", h.profile)
		r.Get("/leaderboard", h.leaderboard)
		r.Post("/game/complete", h.completeGame)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
