// Package lifecycle implements create, read, update and delete for taggable
// entities. Entity-specific rules are injected through a Strategy, so the
// same service backs both collection points and events.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/proximity"
)

type entityRepo[E domain.Taggable] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*E, error)
	List(ctx context.Context, page domain.PageRequest) ([]E, int, error)
	Create(ctx context.Context, entity *E) (*E, error)
	Update(ctx context.Context, entity *E) (*E, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type associationManager interface {
	Attach(ctx context.Context, entityID, categoryID uuid.UUID) error
	Detach(ctx context.Context, entityID, categoryID uuid.UUID) error
	ReplaceAll(ctx context.Context, entityID uuid.UUID, categoryIDs []uuid.UUID) error
	Purge(ctx context.Context, entityID uuid.UUID) error
	CategoriesOfMany(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.Category, error)
}

type searcher[E domain.Taggable] interface {
	Search(ctx context.Context, q domain.DiscoveryFilter) (domain.Page[proximity.Hit[E]], error)
}

type ownerDirectory interface {
	Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.OwnerSummary, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Strategy carries the entity-specific parts of the lifecycle.
type Strategy[E domain.Taggable] struct {
	// Kind identifies the entity in audit records and logs.
	Kind domain.EntityType
	// Label is the human name used in confirmation messages ("Collection point").
	Label string
	// Validate returns the rules that apply on top of the coordinate ranges.
	// Nil means no extra rules.
	Validate func(entity E) []domain.FieldError
	// AssignOwner sets the owner of a draft before it is stored.
	AssignOwner func(entity *E, ownerID uuid.UUID)
	// Snapshot returns the scalar fields recorded in the audit log.
	Snapshot func(entity E) map[string]any
	// Decorate adds kind-specific data to hydrated listings. Optional.
	Decorate func(ctx context.Context, listings []domain.Listing[E]) error
}

// Service manages the lifecycle of one taggable entity kind.
type Service[E domain.Taggable] struct {
	strategy Strategy[E]
	entities entityRepo[E]
	tags     associationManager
	search   searcher[E]
	owners   ownerDirectory
	audit    auditLogger
	tx       txManager
	maxLimit int
	log      *slog.Logger
}

// NewService creates a lifecycle service. maxLimit bounds the page size of
// plain listings; searches are bounded by the engine.
func NewService[E domain.Taggable](
	log *slog.Logger,
	strategy Strategy[E],
	entities entityRepo[E],
	tags associationManager,
	search searcher[E],
	owners ownerDirectory,
	audit auditLogger,
	tx txManager,
	maxLimit int,
) *Service[E] {
	return &Service[E]{
		strategy: strategy,
		entities: entities,
		tags:     tags,
		search:   search,
		owners:   owners,
		audit:    audit,
		tx:       tx,
		maxLimit: maxLimit,
		log:      log.With("service", "lifecycle", "kind", strategy.Kind.String()),
	}
}

// Kind returns the entity kind this service manages.
func (s *Service[E]) Kind() domain.EntityType { return s.strategy.Kind }

func (s *Service[E]) validate(entity E) error {
	errs := entity.Base().Location.Validate("")
	if s.strategy.Validate != nil {
		errs = append(errs, s.strategy.Validate(entity)...)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (s *Service[E]) snapshot(entity E) map[string]any {
	base := entity.Base()
	changes := map[string]any{
		"lat": base.Location.Lat,
		"lon": base.Location.Lon,
	}
	if s.strategy.Snapshot != nil {
		for k, v := range s.strategy.Snapshot(entity) {
			changes[k] = v
		}
	}
	return changes
}
