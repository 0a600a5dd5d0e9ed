package tagging

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// CategoriesOf returns the categories attached to an entity, ordered by name.
// Reads go through the aggregate cache. The loaded list is stored under the
// generation observed on the miss, so a mutation committed in between wins.
func (m *Manager) CategoriesOf(ctx context.Context, entityID uuid.UUID) ([]domain.Category, error) {
	cached, generation, ok := m.cache.GetCategories(ctx, m.kind, entityID)
	if ok {
		return cached, nil
	}

	categories, err := m.associations.CategoriesOf(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("categories of %s: %w", entityID, err)
	}

	m.cache.SetCategories(ctx, m.kind, entityID, generation, categories)
	return categories, nil
}

// CategoriesOfMany batch-loads categories for several entities.
// Every requested id is present in the result, with an empty slice when untagged.
func (m *Manager) CategoriesOfMany(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.Category, error) {
	result := make(map[uuid.UUID][]domain.Category, len(entityIDs))

	var missing []uuid.UUID
	generations := make(map[uuid.UUID]int64)
	for _, id := range entityIDs {
		cached, generation, ok := m.cache.GetCategories(ctx, m.kind, id)
		if ok {
			result[id] = cached
			continue
		}
		generations[id] = generation
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		loaded, err := m.associations.CategoriesOfMany(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("categories of %d entities: %w", len(missing), err)
		}
		for _, id := range missing {
			categories := loaded[id]
			if categories == nil {
				categories = []domain.Category{}
			}
			result[id] = categories
			m.cache.SetCategories(ctx, m.kind, id, generations[id], categories)
		}
	}

	return result, nil
}
