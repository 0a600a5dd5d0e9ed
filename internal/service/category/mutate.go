package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/pkg/ctxutil"
)

// Create adds a category. Names are unique regardless of case.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	existing, err := s.categories.GetByName(ctx, name)
	switch {
	case err == nil:
		return nil, fmt.Errorf("category %q exists as %s: %w", name, existing.ID, domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get category by name: %w", err)
	}

	var created *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.categories.Create(txCtx, name)
		if errors.Is(createErr, domain.ErrAlreadyExists) {
			return fmt.Errorf("category %q: %w", name, domain.ErrConflict)
		}
		if createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}

// Delete removes a category. Categories still referenced by a collection
// point or an event cannot be deleted and yield domain.ErrConflict.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		usage, err := s.categories.Usage(txCtx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("category usage: %w", err)
		}
		if u := usage[id]; u.Total() > 0 {
			return fmt.Errorf("category %s used by %d collection points and %d events: %w",
				id, u.CollectionPoints, u.Events, domain.ErrConflict)
		}

		if err := s.categories.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": c.Name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateUsage(ctx, id)

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", id.String()),
		slog.String("name", c.Name),
	)

	return nil
}
