package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Remove deletes the entity and its category associations in one
// transaction. Only the owner may remove.
func (s *Service[E]) Remove(ctx context.Context, id, userID uuid.UUID) (domain.DeleteResult, error) {
	current, err := s.ownedBy(ctx, id, userID)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tags.Purge(txCtx, id); err != nil {
			return fmt.Errorf("purge categories: %w", err)
		}
		if err := s.entities.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete %s: %w", s.strategy.Kind, err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: s.strategy.Kind,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    s.snapshot(*current),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.DeleteResult{}, err
	}

	s.log.InfoContext(ctx, "entity removed",
		slog.String("user_id", userID.String()),
		slog.String("entity_id", id.String()),
	)

	return domain.DeleteResult{
		ID:      id,
		Message: s.strategy.Label + " removed successfully",
	}, nil
}
