package tagging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/metrics"
)

// Attach links a category to an entity.
// Returns ErrNotFound if the category does not exist and ErrConflict if the
// pair is already linked.
func (m *Manager) Attach(ctx context.Context, entityID, categoryID uuid.UUID) error {
	if _, err := m.categories.GetByID(ctx, categoryID); err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	err := m.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := m.associations.Exists(txCtx, entityID, categoryID)
		if err != nil {
			return fmt.Errorf("check association: %w", err)
		}
		if exists {
			return fmt.Errorf("category %s already attached to %s: %w", categoryID, entityID, domain.ErrConflict)
		}

		if _, err := m.associations.Insert(txCtx, entityID, categoryID); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("category %s already attached to %s: %w", categoryID, entityID, domain.ErrConflict)
			}
			return fmt.Errorf("insert association: %w", err)
		}

		m.invalidateAfterCommit(txCtx, entityID, []uuid.UUID{categoryID})
		return nil
	})
	if err != nil {
		return err
	}

	metrics.AssociationMutationsTotal.WithLabelValues(m.kind.String(), "attach").Inc()
	m.log.InfoContext(ctx, "category attached",
		slog.String("entity_id", entityID.String()),
		slog.String("category_id", categoryID.String()),
	)

	return nil
}

// Detach removes the link between an entity and a category.
// Returns ErrNotFound if the pair is not linked.
func (m *Manager) Detach(ctx context.Context, entityID, categoryID uuid.UUID) error {
	err := m.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deleted, err := m.associations.Delete(txCtx, entityID, categoryID)
		if err != nil {
			return fmt.Errorf("delete association: %w", err)
		}
		if !deleted {
			return fmt.Errorf("category %s on %s: %w", categoryID, entityID, domain.ErrNotFound)
		}

		m.invalidateAfterCommit(txCtx, entityID, []uuid.UUID{categoryID})
		return nil
	})
	if err != nil {
		return err
	}

	metrics.AssociationMutationsTotal.WithLabelValues(m.kind.String(), "detach").Inc()
	m.log.InfoContext(ctx, "category detached",
		slog.String("entity_id", entityID.String()),
		slog.String("category_id", categoryID.String()),
	)

	return nil
}

// ReplaceAll makes categoryIDs the complete category set of the entity.
// Every id must resolve to an existing category, otherwise a ValidationError
// is returned and nothing changes. An empty slice clears all categories.
// The delete and the bulk insert share one transaction.
func (m *Manager) ReplaceAll(ctx context.Context, entityID uuid.UUID, categoryIDs []uuid.UUID) error {
	ids := dedupe(categoryIDs)

	if len(ids) > 0 {
		found, err := m.categories.CountExisting(ctx, ids)
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if found != len(ids) {
			return domain.NewValidationError("category_ids",
				fmt.Sprintf("%d of %d category ids could not be resolved", len(ids)-found, len(ids)))
		}
	}

	var removed []uuid.UUID
	err := m.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = m.associations.DeleteAllForEntity(txCtx, entityID)
		if err != nil {
			return fmt.Errorf("delete associations: %w", err)
		}

		if len(ids) > 0 {
			if _, err := m.associations.InsertMany(txCtx, entityID, ids); err != nil {
				return fmt.Errorf("insert associations: %w", err)
			}
		}

		m.invalidateAfterCommit(txCtx, entityID, append(removed, ids...))
		return nil
	})
	if err != nil {
		return err
	}

	metrics.AssociationMutationsTotal.WithLabelValues(m.kind.String(), "replace").Inc()
	m.log.InfoContext(ctx, "categories replaced",
		slog.String("entity_id", entityID.String()),
		slog.Int("removed", len(removed)),
		slog.Int("attached", len(ids)),
	)

	return nil
}

// Purge deletes every association of an entity. Used when the entity itself is removed.
func (m *Manager) Purge(ctx context.Context, entityID uuid.UUID) error {
	return m.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := m.associations.DeleteAllForEntity(txCtx, entityID)
		if err != nil {
			return fmt.Errorf("delete associations: %w", err)
		}
		m.invalidateAfterCommit(txCtx, entityID, removed)
		return nil
	})
}
