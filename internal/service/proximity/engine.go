// Package proximity answers discovery queries over taggable entities: an
// optional category pre-filter, great-circle distance filtering around a
// center, ordering and in-memory pagination.
package proximity

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/geo"
	"github.com/heartmarshall/ecoponto-backend/internal/metrics"
)

type candidateLoader[E domain.Taggable] interface {
	Candidates(ctx context.Context, filter domain.CandidateFilter) ([]E, error)
}

// Options configures an Engine.
type Options struct {
	// DefaultRadiusMeters applies when a center is given without a radius.
	DefaultRadiusMeters int
	// MaxLimit is the largest accepted page size.
	MaxLimit int
	// UpcomingOnly hides entities whose schedule has ended. Only meaningful
	// for kinds whose loader honours CandidateFilter.EndingAfter.
	UpcomingOnly bool
}

// Hit is one search result with its distance from the query center, when
// the query had one.
type Hit[E domain.Taggable] struct {
	Item           E
	DistanceMeters *int
}

// Engine searches one entity kind.
type Engine[E domain.Taggable] struct {
	kind   domain.EntityType
	loader candidateLoader[E]
	opts   Options
	now    func() time.Time
	log    *slog.Logger
}

// NewEngine creates an Engine for kind.
func NewEngine[E domain.Taggable](log *slog.Logger, kind domain.EntityType, loader candidateLoader[E], opts Options) *Engine[E] {
	return &Engine[E]{
		kind:   kind,
		loader: loader,
		opts:   opts,
		now:    time.Now,
		log:    log.With("service", "proximity", "kind", kind.String()),
	}
}

// Search runs a discovery query.
//
// With a center, candidates farther than the radius are dropped and the rest
// are ordered by ascending distance, newest first on ties. Without a center,
// candidates are ordered newest first and carry no distance.
func (e *Engine[E]) Search(ctx context.Context, q domain.DiscoveryFilter) (domain.Page[Hit[E]], error) {
	if err := q.Validate(e.opts.MaxLimit); err != nil {
		return domain.Page[Hit[E]]{}, err
	}

	started := time.Now()

	filter := domain.CandidateFilter{CategoryID: q.CategoryID}
	if e.opts.UpcomingOnly {
		now := e.now()
		filter.EndingAfter = &now
	}

	candidates, err := e.loader.Candidates(ctx, filter)
	if err != nil {
		return domain.Page[Hit[E]]{}, fmt.Errorf("load candidates: %w", err)
	}

	var hits []Hit[E]
	mode := "category"
	if q.Center != nil {
		mode = "spatial"
		hits = e.withinRadius(candidates, *q.Center, e.radius(q))
	} else {
		hits = newestFirst(candidates)
	}

	page := domain.Paginate(hits, q.Page)

	metrics.ProximitySearchesTotal.WithLabelValues(e.kind.String(), mode).Inc()
	metrics.ProximityCandidates.WithLabelValues(e.kind.String()).Observe(float64(len(candidates)))
	metrics.ProximityDurationMs.WithLabelValues(e.kind.String()).Observe(float64(time.Since(started).Milliseconds()))

	e.log.DebugContext(ctx, "proximity search",
		slog.String("mode", mode),
		slog.Int("candidates", len(candidates)),
		slog.Int("matched", len(hits)),
	)

	return page, nil
}

func (e *Engine[E]) radius(q domain.DiscoveryFilter) int {
	if q.RadiusMeters != nil {
		return *q.RadiusMeters
	}
	return e.opts.DefaultRadiusMeters
}

func (e *Engine[E]) withinRadius(candidates []E, center domain.Coordinates, radius int) []Hit[E] {
	hits := make([]Hit[E], 0, len(candidates))
	for _, c := range candidates {
		d, ok := geo.Within(center, c.Base().Location, radius)
		if !ok {
			continue
		}
		hits = append(hits, Hit[E]{Item: c, DistanceMeters: &d})
	}

	slices.SortStableFunc(hits, func(a, b Hit[E]) int {
		if c := cmp.Compare(*a.DistanceMeters, *b.DistanceMeters); c != 0 {
			return c
		}
		return b.Item.Base().CreatedAt.Compare(a.Item.Base().CreatedAt)
	})
	return hits
}

func newestFirst[E domain.Taggable](candidates []E) []Hit[E] {
	hits := make([]Hit[E], len(candidates))
	for i, c := range candidates {
		hits[i] = Hit[E]{Item: c}
	}
	slices.SortStableFunc(hits, func(a, b Hit[E]) int {
		return b.Item.Base().CreatedAt.Compare(a.Item.Base().CreatedAt)
	})
	return hits
}
