package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// FindAll lists entities. Filters with a center or a category go through the
// proximity engine; everything else is a plain database-paginated listing.
func (s *Service[E]) FindAll(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[domain.Listing[E]], error) {
	if filter.IsSearch() {
		return s.findByProximity(ctx, filter)
	}

	if err := filter.Validate(s.maxLimit); err != nil {
		return domain.Page[domain.Listing[E]]{}, err
	}

	entities, total, err := s.entities.List(ctx, filter.Page)
	if err != nil {
		return domain.Page[domain.Listing[E]]{}, fmt.Errorf("list %s: %w", s.strategy.Kind, err)
	}

	listings, err := s.hydrate(ctx, entities)
	if err != nil {
		return domain.Page[domain.Listing[E]]{}, err
	}
	return domain.NewPage(listings, total, filter.Page), nil
}

func (s *Service[E]) findByProximity(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[domain.Listing[E]], error) {
	hits, err := s.search.Search(ctx, filter)
	if err != nil {
		return domain.Page[domain.Listing[E]]{}, err
	}

	entities := make([]E, len(hits.Items))
	for i, h := range hits.Items {
		entities[i] = h.Item
	}

	listings, err := s.hydrate(ctx, entities)
	if err != nil {
		return domain.Page[domain.Listing[E]]{}, err
	}
	for i := range listings {
		listings[i].DistanceMeters = hits.Items[i].DistanceMeters
	}

	return domain.Page[domain.Listing[E]]{
		Items:      listings,
		Total:      hits.Total,
		Page:       hits.Page,
		Limit:      hits.Limit,
		TotalPages: hits.TotalPages,
	}, nil
}

// FindOne returns a hydrated entity or domain.ErrNotFound.
func (s *Service[E]) FindOne(ctx context.Context, id uuid.UUID) (*domain.Listing[E], error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrateOne(ctx, *entity)
}

func (s *Service[E]) load(ctx context.Context, id uuid.UUID) (*E, error) {
	entity, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.strategy.Kind, err)
	}
	return entity, nil
}
