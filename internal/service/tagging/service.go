// Package tagging maintains the many-to-many links between taggable entities
// (collection points, events) and categories.
package tagging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	CountExisting(ctx context.Context, ids []uuid.UUID) (int, error)
}

type associationRepo interface {
	Exists(ctx context.Context, entityID, categoryID uuid.UUID) (bool, error)
	Insert(ctx context.Context, entityID, categoryID uuid.UUID) (*domain.CategoryAssociation, error)
	InsertMany(ctx context.Context, entityID uuid.UUID, categoryIDs []uuid.UUID) (int, error)
	Delete(ctx context.Context, entityID, categoryID uuid.UUID) (bool, error)
	DeleteAllForEntity(ctx context.Context, entityID uuid.UUID) ([]uuid.UUID, error)
	CategoriesOf(ctx context.Context, entityID uuid.UUID) ([]domain.Category, error)
	CategoriesOfMany(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.Category, error)
}

type aggregateCache interface {
	GetCategories(ctx context.Context, kind domain.EntityType, entityID uuid.UUID) ([]domain.Category, int64, bool)
	SetCategories(ctx context.Context, kind domain.EntityType, entityID uuid.UUID, generation int64, categories []domain.Category)
	InvalidateEntity(ctx context.Context, kind domain.EntityType, entityID uuid.UUID)
	InvalidateUsage(ctx context.Context, categoryIDs ...uuid.UUID)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, fn func())
}

// Manager enforces category existence and pair uniqueness for one entity kind.
// Every mutation busts the cached category list of the entity and the usage
// counts of the categories involved once the surrounding transaction commits.
type Manager struct {
	kind         domain.EntityType
	categories   categoryRepo
	associations associationRepo
	cache        aggregateCache
	tx           txManager
	log          *slog.Logger
}

// NewManager creates a Manager for the given taggable entity kind.
func NewManager(
	log *slog.Logger,
	kind domain.EntityType,
	categories categoryRepo,
	associations associationRepo,
	cache aggregateCache,
	tx txManager,
) *Manager {
	return &Manager{
		kind:         kind,
		categories:   categories,
		associations: associations,
		cache:        cache,
		tx:           tx,
		log:          log.With("service", "tagging", "kind", kind.String()),
	}
}

// Kind returns the entity kind the manager is bound to.
func (m *Manager) Kind() domain.EntityType { return m.kind }

// invalidateAfterCommit schedules cache busting for the entity and the given categories.
func (m *Manager) invalidateAfterCommit(ctx context.Context, entityID uuid.UUID, categoryIDs []uuid.UUID) {
	m.tx.AfterCommit(ctx, func() {
		m.cache.InvalidateEntity(context.WithoutCancel(ctx), m.kind, entityID)
		if len(categoryIDs) > 0 {
			m.cache.InvalidateUsage(context.WithoutCancel(ctx), categoryIDs...)
		}
	})
}

// dedupe returns ids with duplicates and uuid.Nil removed, preserving order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
