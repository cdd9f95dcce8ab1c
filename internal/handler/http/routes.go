package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.authenticate)

	router.Route("/auth", func(r chi.Router) {
		r.With(h.policy("/auth/register")...).Post("/register", h.register)
		r.With(h.policy("/auth/login")...).Post("/login", h.login)
		// the caller's own identity makes no sense anonymously
		r.With(h.requireAuth).Get("/me", h.me)
	})

	router.With(h.policy("/user")...).Get("/user", h.listUsers)
	router.With(h.policy("/username/{username}")...).Get("/username/{username}", h.getUserByUsername)
	router.With(h.policy("/id/{id}")...).Get("/id/{id}", h.getUserByID)

	router.With(h.policy("/health")...).Get("/health", h.health)
	router.With(h.policy("/version")...).Get("/version", h.getServerVersion)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// policy returns the middleware chain the security configuration demands
// for the route pattern.
func (h *Handler) policy(pattern string) []func(http.Handler) http.Handler {
	if h.security.IsProtected(pattern) {
		return []func(http.Handler) http.Handler{h.requireAuth}
	}
	return nil
}
