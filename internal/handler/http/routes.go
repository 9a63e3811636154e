package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is fixed: recovery, trace id
// and metrics wrap CORS, JSON body parsing, security headers, compression,
// access logging and rate limiting, in that order. HEAD requests fall
// through to the matching GET route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRecovery, h.withTraceID, h.withMetrics)
	router.Use(
		h.withCORS,
		h.withJSONBody,
		h.withSecurityHeaders,
		h.withGZip,
		h.withLogging,
		h.withRateLimit,
	)
	router.Use(middleware.GetHead)

	router.Get("/health", h.getHealth)
	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.Route("/api/v1/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Get("/{id}", h.getPost)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createPost)
			r.Patch("/{id}", h.updatePost)
			r.Delete("/{id}", h.deletePost)
		})
	})

	router.Route("/api/v1/comments", func(r chi.Router) {
		r.Get("/", h.listComments)
		r.Get("/{id}", h.getComment)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createComment)
			r.Patch("/{id}", h.updateComment)
			r.Delete("/{id}", h.deleteComment)
		})
	})

	// an unsupported method on a known path is reported as not found,
	// the same as an unknown path
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
