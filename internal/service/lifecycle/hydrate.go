package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// hydrate turns stored entities into listings with owner summaries,
// categories and kind-specific decorations. Distances are left unset.
func (s *Service[E]) hydrate(ctx context.Context, entities []E) ([]domain.Listing[E], error) {
	listings := make([]domain.Listing[E], len(entities))
	if len(entities) == 0 {
		return listings, nil
	}

	ids := make([]uuid.UUID, len(entities))
	ownerIDs := make([]uuid.UUID, 0, len(entities))
	seenOwner := make(map[uuid.UUID]bool, len(entities))
	for i, e := range entities {
		base := e.Base()
		ids[i] = base.ID
		if !seenOwner[base.OwnerID] {
			seenOwner[base.OwnerID] = true
			ownerIDs = append(ownerIDs, base.OwnerID)
		}
	}

	categories, err := s.tags.CategoriesOfMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	owners, err := s.owners.Summaries(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("load owners: %w", err)
	}

	for i, e := range entities {
		base := e.Base()
		owner, ok := owners[base.OwnerID]
		if !ok {
			owner = domain.OwnerSummary{ID: base.OwnerID}
		}
		cats := categories[base.ID]
		if cats == nil {
			cats = []domain.Category{}
		}
		listings[i] = domain.Listing[E]{
			Item:       e,
			Owner:      owner,
			Categories: cats,
		}
	}

	if s.strategy.Decorate != nil {
		if err := s.strategy.Decorate(ctx, listings); err != nil {
			return nil, fmt.Errorf("decorate: %w", err)
		}
	}

	return listings, nil
}

func (s *Service[E]) hydrateOne(ctx context.Context, entity E) (*domain.Listing[E], error) {
	listings, err := s.hydrate(ctx, []E{entity})
	if err != nil {
		return nil, err
	}
	return &listings[0], nil
}
