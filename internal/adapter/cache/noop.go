package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Noop is used when Redis is not configured. Every read misses.
type Noop struct{}

func (Noop) GetCategories(context.Context, domain.EntityType, uuid.UUID) ([]domain.Category, int64, bool) {
	return nil, -1, false
}

func (Noop) SetCategories(context.Context, domain.EntityType, uuid.UUID, int64, []domain.Category) {}

func (Noop) InvalidateEntity(context.Context, domain.EntityType, uuid.UUID) {}

func (Noop) GetUsage(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.CategoryUsage, []uuid.UUID) {
	return map[uuid.UUID]domain.CategoryUsage{}, ids
}

func (Noop) SetUsage(context.Context, map[uuid.UUID]domain.CategoryUsage) {}

func (Noop) InvalidateUsage(context.Context, ...uuid.UUID) {}

func (Noop) Ping(context.Context) error { return nil }
