package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Update applies mutate to the stored entity on behalf of userID.
//
// Only the owner may update. mutate changes scalar fields in place; the owner
// is restored afterwards. A nil categoryIDs leaves the
// categories unchanged, a non-nil one (even empty) replaces them.
func (s *Service[E]) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	mutate func(entity *E),
	categoryIDs *[]uuid.UUID,
) (*domain.Listing[E], error) {
	current, err := s.ownedBy(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	before := s.snapshot(*current)
	next := *current
	if mutate != nil {
		mutate(&next)
	}
	s.strategy.AssignOwner(&next, (*current).Base().OwnerID)

	if err := s.validate(next); err != nil {
		return nil, err
	}

	var updated *E
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.entities.Update(txCtx, &next)
		if updateErr != nil {
			return fmt.Errorf("update %s: %w", s.strategy.Kind, updateErr)
		}

		changes := diff(before, s.snapshot(*updated))
		if categoryIDs != nil {
			if err := s.tags.ReplaceAll(txCtx, id, *categoryIDs); err != nil {
				return fmt.Errorf("replace categories: %w", err)
			}
			changes["category_ids"] = map[string]any{"new": *categoryIDs}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: s.strategy.Kind,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entity updated",
		slog.String("user_id", userID.String()),
		slog.String("entity_id", id.String()),
		slog.Bool("categories_replaced", categoryIDs != nil),
	)

	return s.hydrateOne(ctx, *updated)
}

// diff returns {"field": {"old": x, "new": y}} for every changed field.
func diff(before, after map[string]any) map[string]any {
	changes := make(map[string]any)
	for k, v := range after {
		if old, ok := before[k]; !ok || fmt.Sprint(old) != fmt.Sprint(v) {
			changes[k] = map[string]any{"old": before[k], "new": v}
		}
	}
	return changes
}
