// Package ownership decides whether a user may mutate a taggable entity.
package ownership

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// AssertOwner returns domain.ErrForbidden unless userID owns the entity.
// Reads never go through this check.
func AssertOwner[E domain.Taggable](entity E, userID uuid.UUID) error {
	base := entity.Base()
	if userID == uuid.Nil || base.OwnerID != userID {
		return fmt.Errorf("entity %s owned by another user: %w", base.ID, domain.ErrForbidden)
	}
	return nil
}
