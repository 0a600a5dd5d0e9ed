package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Create stores draft owned by ownerID and attaches categoryIDs, all in one
// transaction. A nil or empty categoryIDs creates an untagged entity.
func (s *Service[E]) Create(ctx context.Context, ownerID uuid.UUID, draft E, categoryIDs []uuid.UUID) (*domain.Listing[E], error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	s.strategy.AssignOwner(&draft, ownerID)

	if err := s.validate(draft); err != nil {
		return nil, err
	}

	var created *E
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.entities.Create(txCtx, &draft)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", s.strategy.Kind, createErr)
		}
		id := (*created).Base().ID

		if len(categoryIDs) > 0 {
			if err := s.tags.ReplaceAll(txCtx, id, categoryIDs); err != nil {
				return fmt.Errorf("attach categories: %w", err)
			}
		}

		changes := s.snapshot(*created)
		changes["category_ids"] = categoryIDs
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ownerID,
			EntityType: s.strategy.Kind,
			EntityID:   &id,
			Action:     domain.AuditActionCreate,
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

	base := (*created).Base()
	s.log.InfoContext(ctx, "entity created",
		slog.String("user_id", ownerID.String()),
		slog.String("entity_id", base.ID.String()),
		slog.Int("categories", len(categoryIDs)),
	)

	return s.hydrateOne(ctx, *created)
}
