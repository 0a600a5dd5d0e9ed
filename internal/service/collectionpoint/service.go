// Package collectionpoint exposes collection point operations on top of the
// generic entity lifecycle.
package collectionpoint

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/lifecycle"
	"github.com/heartmarshall/ecoponto-backend/pkg/ctxutil"
)

// Listing is a hydrated collection point.
type Listing = domain.Listing[domain.CollectionPoint]

type lifecycleService interface {
	Create(ctx context.Context, ownerID uuid.UUID, draft domain.CollectionPoint, categoryIDs []uuid.UUID) (*Listing, error)
	FindAll(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[Listing], error)
	FindOne(ctx context.Context, id uuid.UUID) (*Listing, error)
	Update(ctx context.Context, id, userID uuid.UUID, mutate func(entity *domain.CollectionPoint), categoryIDs *[]uuid.UUID) (*Listing, error)
	Remove(ctx context.Context, id, userID uuid.UUID) (domain.DeleteResult, error)
	AttachCategory(ctx context.Context, id, categoryID, userID uuid.UUID) (*Listing, error)
	DetachCategory(ctx context.Context, id, categoryID, userID uuid.UUID) (*Listing, error)
}

// Strategy returns the lifecycle rules for collection points.
func Strategy() lifecycle.Strategy[domain.CollectionPoint] {
	return lifecycle.Strategy[domain.CollectionPoint]{
		Kind:  domain.EntityTypeCollectionPoint,
		Label: "Collection point",
		AssignOwner: func(p *domain.CollectionPoint, ownerID uuid.UUID) {
			p.OwnerID = ownerID
		},
		Snapshot: func(p domain.CollectionPoint) map[string]any {
			return map[string]any{
				"name":          p.Name,
				"address":       p.Address,
				"contact":       p.Contact,
				"opening_hours": p.OpeningHours,
			}
		},
	}
}

// Service provides collection point operations for the authenticated user.
type Service struct {
	lc  lifecycleService
	log *slog.Logger
}

// NewService creates a new collection point service.
func NewService(log *slog.Logger, lc lifecycleService) *Service {
	return &Service{
		lc:  lc,
		log: log.With("service", "collectionpoint"),
	}
}

// Create stores a new collection point owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.lc.Create(ctx, userID, input.draft(), input.CategoryIDs)
}

// List returns collection points matching filter. Public.
func (s *Service) List(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[Listing], error) {
	return s.lc.FindAll(ctx, filter)
}

// Get returns one collection point. Public.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.lc.FindOne(ctx, id)
}

// Update changes a collection point owned by the caller.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.lc.Update(ctx, input.ID, userID, input.apply, input.CategoryIDs)
}

// Delete removes a collection point owned by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (domain.DeleteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DeleteResult{}, domain.ErrUnauthorized
	}
	return s.lc.Remove(ctx, id, userID)
}

// AttachCategory tags a collection point owned by the caller.
func (s *Service) AttachCategory(ctx context.Context, id, categoryID uuid.UUID) (*Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.lc.AttachCategory(ctx, id, categoryID, userID)
}

// DetachCategory untags a collection point owned by the caller.
func (s *Service) DetachCategory(ctx context.Context, id, categoryID uuid.UUID) (*Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.lc.DetachCategory(ctx, id, categoryID, userID)
}
