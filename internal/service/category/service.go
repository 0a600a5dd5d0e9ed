// Package category manages the global category catalogue.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Usage(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.CategoryUsage, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type usageCache interface {
	GetUsage(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID]domain.CategoryUsage, []uuid.UUID)
	SetUsage(ctx context.Context, usage map[uuid.UUID]domain.CategoryUsage)
	InvalidateUsage(ctx context.Context, categoryIDs ...uuid.UUID)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category catalogue operations.
type Service struct {
	categories categoryRepo
	cache      usageCache
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	cache usageCache,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		cache:      cache,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}

// CreateInput holds the parameters for creating a category.
type CreateInput struct {
	Name string
}

// Validate checks the trimmed name length.
func (i CreateInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > domain.CategoryNameMaxLength {
		return domain.NewValidationError("name", fmt.Sprintf("max %d characters", domain.CategoryNameMaxLength))
	}
	return nil
}
