package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// List returns every category ordered by name, with usage counts.
func (s *Service) List(ctx context.Context) ([]domain.CategoryWithUsage, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return s.withUsage(ctx, categories)
}

// Get returns one category with usage counts.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.CategoryWithUsage, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	out, err := s.withUsage(ctx, []domain.Category{*c})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// withUsage reads usage through the cache and backfills misses from the
// database.
func (s *Service) withUsage(ctx context.Context, categories []domain.Category) ([]domain.CategoryWithUsage, error) {
	ids := make([]uuid.UUID, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}

	usage, missing := s.cache.GetUsage(ctx, ids)
	if len(missing) > 0 {
		loaded, err := s.categories.Usage(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("category usage: %w", err)
		}
		s.cache.SetUsage(ctx, loaded)
		if usage == nil {
			usage = make(map[uuid.UUID]domain.CategoryUsage, len(loaded))
		}
		for id, u := range loaded {
			usage[id] = u
		}
	}

	out := make([]domain.CategoryWithUsage, len(categories))
	for i, c := range categories {
		out[i] = domain.CategoryWithUsage{Category: c, Usage: usage[c.ID]}
	}
	return out, nil
}
