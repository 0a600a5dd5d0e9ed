package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ecoponto-backend/internal/adapter/cache"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/association"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/category"
	pointrepo "github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/collectionpoint"
	eventrepo "github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/participant"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/ecoponto-backend/internal/auth"
	"github.com/heartmarshall/ecoponto-backend/internal/config"
	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/metrics"
	"github.com/heartmarshall/ecoponto-backend/internal/service/category"
	"github.com/heartmarshall/ecoponto-backend/internal/service/classify"
	"github.com/heartmarshall/ecoponto-backend/internal/service/collectionpoint"
	"github.com/heartmarshall/ecoponto-backend/internal/service/event"
	"github.com/heartmarshall/ecoponto-backend/internal/service/lifecycle"
	"github.com/heartmarshall/ecoponto-backend/internal/service/proximity"
	"github.com/heartmarshall/ecoponto-backend/internal/service/tagging"
	"github.com/heartmarshall/ecoponto-backend/internal/transport/middleware"
	"github.com/heartmarshall/ecoponto-backend/internal/transport/rest"
)

// aggregateCache is satisfied by both cache.Redis and cache.Noop.
type aggregateCache interface {
	GetCategories(ctx context.Context, kind domain.EntityType, entityID uuid.UUID) ([]domain.Category, int64, bool)
	SetCategories(ctx context.Context, kind domain.EntityType, entityID uuid.UUID, generation int64, categories []domain.Category)
	InvalidateEntity(ctx context.Context, kind domain.EntityType, entityID uuid.UUID)
	GetUsage(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID]domain.CategoryUsage, []uuid.UUID)
	SetUsage(ctx context.Context, usage map[uuid.UUID]domain.CategoryUsage)
	InvalidateUsage(ctx context.Context, categoryIDs ...uuid.UUID)
	Ping(ctx context.Context) error
}

// openCache connects to Redis when configured and falls back to the no-op
// cache otherwise.
func openCache(ctx context.Context, logger *slog.Logger, cfg config.RedisConfig) (aggregateCache, func(), error) {
	if !cfg.Enabled() {
		logger.Info("redis not configured, aggregate cache disabled")
		return cache.Noop{}, func() {}, nil
	}

	rdb, err := cache.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Error("close redis", slog.String("error", err.Error()))
		}
	}
	return cache.NewRedis(logger, rdb, cfg.KeyPrefix, cfg.TTL), closeFn, nil
}

// buildHandler wires repositories, services and handlers into the HTTP
// router. The returned stop function releases background resources.
func buildHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, aggregates aggregateCache) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	categories := categoryrepo.New(pool)
	points := pointrepo.New(pool)
	events := eventrepo.New(pool)
	participants := participant.New(pool)
	users := user.New(pool)
	auditRepo := audit.New(pool)

	// Category associations, one manager per taggable kind.
	pointTags := tagging.NewManager(logger, domain.EntityTypeCollectionPoint, categories,
		association.New(pool, domain.EntityTypeCollectionPoint), aggregates, txm)
	eventTags := tagging.NewManager(logger, domain.EntityTypeEvent, categories,
		association.New(pool, domain.EntityTypeEvent), aggregates, txm)

	// Proximity search. Ended events are hidden from discovery.
	searchOpts := proximity.Options{
		DefaultRadiusMeters: cfg.Discovery.DefaultRadiusMeters,
		MaxLimit:            cfg.Discovery.MaxLimit,
	}
	pointSearch := proximity.NewEngine[domain.CollectionPoint](logger, domain.EntityTypeCollectionPoint, points, searchOpts)
	eventOpts := searchOpts
	eventOpts.UpcomingOnly = true
	eventSearch := proximity.NewEngine[domain.Event](logger, domain.EntityTypeEvent, events, eventOpts)

	// Entity lifecycles.
	pointLifecycle := lifecycle.NewService(logger, collectionpoint.Strategy(),
		points, pointTags, pointSearch, users, auditRepo, txm, cfg.Discovery.MaxLimit)
	eventLifecycle := lifecycle.NewService(logger, event.Strategy(participants),
		events, eventTags, eventSearch, users, auditRepo, txm, cfg.Discovery.MaxLimit)

	pointService := collectionpoint.NewService(logger, pointLifecycle)
	eventService := event.NewService(logger, eventLifecycle, events, participants, txm)
	categoryService := category.NewService(logger, categories, aggregates, auditRepo, txm)
	matcher := classify.NewService(logger, categories, classify.Options{
		MinConfidence: cfg.Classify.MinConfidence,
		MinSimilarity: cfg.Classify.MinSimilarity,
	})

	// Transport.
	validate := rest.NewValidator()
	handlers := rest.Handlers{
		Health:           rest.NewHealthHandler(pool, aggregates, CurrentBuild().String()),
		Categories:       rest.NewCategoryHandler(categoryService, matcher, validate, logger),
		CollectionPoints: rest.NewCollectionPointHandler(pointService, validate, cfg.Discovery.DefaultLimit, logger),
		Events:           rest.NewEventHandler(eventService, validate, cfg.Discovery.DefaultLimit, logger),
		Metrics:          metrics.Handler(),
	}

	mw := rest.Middlewares{
		CORS: middleware.CORS(cfg.CORS),
		Auth: middleware.Auth(auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		mw.Limit = limiter.Limit
		stop = limiter.Stop
	}

	return rest.NewRouter(logger, handlers, mw), stop
}
