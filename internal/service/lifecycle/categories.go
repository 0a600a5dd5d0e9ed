package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/ownership"
)

// AttachCategory tags the entity with categoryID and returns the refreshed view.
func (s *Service[E]) AttachCategory(ctx context.Context, id, categoryID, userID uuid.UUID) (*domain.Listing[E], error) {
	current, err := s.ownedBy(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.tags.Attach(ctx, id, categoryID); err != nil {
		return nil, fmt.Errorf("attach category: %w", err)
	}
	return s.hydrateOne(ctx, *current)
}

// DetachCategory removes the categoryID tag and returns the refreshed view.
func (s *Service[E]) DetachCategory(ctx context.Context, id, categoryID, userID uuid.UUID) (*domain.Listing[E], error) {
	current, err := s.ownedBy(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.tags.Detach(ctx, id, categoryID); err != nil {
		return nil, fmt.Errorf("detach category: %w", err)
	}
	return s.hydrateOne(ctx, *current)
}

func (s *Service[E]) ownedBy(ctx context.Context, id, userID uuid.UUID) (*E, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.AssertOwner(*current, userID); err != nil {
		return nil, err
	}
	return current, nil
}
