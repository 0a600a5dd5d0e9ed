package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/ecoponto-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health           *HealthHandler
	Categories       *CategoryHandler
	CollectionPoints *CollectionPointHandler
	Events           *EventHandler
	Metrics          http.Handler
}

// Middlewares holds the request-scoped parts of the chain. A nil Limit
// disables rate limiting.
type Middlewares struct {
	CORS  middleware.Middleware
	Auth  middleware.Middleware
	Limit middleware.Middleware
}

// NewRouter builds the HTTP API. Reads are public; writes require a user and
// go through the rate limiter.
func NewRouter(logger *slog.Logger, h Handlers, mw Middlewares) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics,
	)
	if mw.CORS != nil {
		r.Use(mw.CORS)
	}
	if mw.Auth != nil {
		r.Use(mw.Auth)
	}

	limit := mw.Limit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	writes := chi.Chain(middleware.RequireUser, limit)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Categories.List)
		r.Get("/{id}", h.Categories.Get)
		r.With(limit).Post("/match", h.Categories.Match)

		r.With(writes...).Post("/", h.Categories.Create)
		r.With(writes...).Delete("/{id}", h.Categories.Delete)
	})

	r.Route("/collection-points", func(r chi.Router) {
		r.Get("/", h.CollectionPoints.List)
		r.Get("/{id}", h.CollectionPoints.Get)

		r.Group(func(r chi.Router) {
			r.Use(writes...)
			r.Post("/", h.CollectionPoints.Create)
			r.Patch("/{id}", h.CollectionPoints.Update)
			r.Delete("/{id}", h.CollectionPoints.Delete)
			r.Post("/{id}/categories/{categoryId}", h.CollectionPoints.AttachCategory)
			r.Delete("/{id}/categories/{categoryId}", h.CollectionPoints.DetachCategory)
		})
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.Events.List)
		r.Get("/{id}", h.Events.Get)

		r.Group(func(r chi.Router) {
			r.Use(writes...)
			r.Post("/", h.Events.Create)
			r.Patch("/{id}", h.Events.Update)
			r.Delete("/{id}", h.Events.Delete)
			r.Post("/{id}/categories/{categoryId}", h.Events.AttachCategory)
			r.Delete("/{id}/categories/{categoryId}", h.Events.DetachCategory)
			r.Post("/{id}/subscription", h.Events.Subscribe)
			r.Delete("/{id}/subscription", h.Events.Unsubscribe)
		})
	})

	return r
}
