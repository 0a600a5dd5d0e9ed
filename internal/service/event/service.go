// Package event exposes event operations on top of the generic entity
// lifecycle, plus participation management.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/lifecycle"
	"github.com/heartmarshall/ecoponto-backend/pkg/ctxutil"
)

// Listing is a hydrated event.
type Listing = domain.Listing[domain.Event]

type lifecycleService interface {
	Create(ctx context.Context, ownerID uuid.UUID, draft domain.Event, categoryIDs []uuid.UUID) (*Listing, error)
	FindAll(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[Listing], error)
	FindOne(ctx context.Context, id uuid.UUID) (*Listing, error)
	Update(ctx context.Context, id, userID uuid.UUID, mutate func(entity *domain.Event), categoryIDs *[]uuid.UUID) (*Listing, error)
	Remove(ctx context.Context, id, userID uuid.UUID) (domain.DeleteResult, error)
	AttachCategory(ctx context.Context, id, categoryID, userID uuid.UUID) (*Listing, error)
	DetachCategory(ctx context.Context, id, categoryID, userID uuid.UUID) (*Listing, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
}

type participantRepo interface {
	Get(ctx context.Context, eventID, userID uuid.UUID) (*domain.Participant, error)
	Create(ctx context.Context, eventID, userID uuid.UUID) (*domain.Participant, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus) (*domain.Participant, error)
}

type participantCounter interface {
	CountActive(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Strategy returns the lifecycle rules for events. Listings are decorated
// with the number of active participants.
func Strategy(counter participantCounter) lifecycle.Strategy[domain.Event] {
	return lifecycle.Strategy[domain.Event]{
		Kind:     domain.EntityTypeEvent,
		Label:    "Event",
		Validate: domain.Event.ValidateSchedule,
		AssignOwner: func(e *domain.Event, ownerID uuid.UUID) {
			e.OwnerID = ownerID
		},
		Snapshot: func(e domain.Event) map[string]any {
			return map[string]any{
				"title":       e.Title,
				"description": e.Description,
				"start_at":    e.StartAt,
				"end_at":      e.EndAt,
			}
		},
		Decorate: func(ctx context.Context, listings []Listing) error {
			ids := make([]uuid.UUID, len(listings))
			for i, l := range listings {
				ids[i] = l.Item.ID
			}
			counts, err := counter.CountActive(ctx, ids)
			if err != nil {
				return fmt.Errorf("count participants: %w", err)
			}
			for i := range listings {
				n := counts[listings[i].Item.ID]
				listings[i].ParticipantCount = &n
			}
			return nil
		},
	}
}

// Service provides event operations for the authenticated user.
type Service struct {
	lc           lifecycleService
	events       eventRepo
	participants participantRepo
	tx           txManager
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new event service.
func NewService(
	log *slog.Logger,
	lc lifecycleService,
	events eventRepo,
	participants participantRepo,
	tx txManager,
) *Service {
	return &Service{
		lc:           lc,
		events:       events,
		participants: participants,
		tx:           tx,
		now:          time.Now,
		log:          log.With("service", "event"),
	}
}

// Create stores a new event owned by the caller.
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

// List returns events matching filter. Public.
func (s *Service) List(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[Listing], error) {
	return s.lc.FindAll(ctx, filter)
}

// Get returns one event. Public.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.lc.FindOne(ctx, id)
}

// Update changes an event owned by the caller.
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

// Delete removes an event owned by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (domain.DeleteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DeleteResult{}, domain.ErrUnauthorized
	}
	return s.lc.Remove(ctx, id, userID)
}

// AttachCategory tags an event owned by the caller.
func (s *Service) AttachCategory(ctx context.Context, id, categoryID uuid.UUID) (*Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.lc.AttachCategory(ctx, id, categoryID, userID)
}

// DetachCategory untags an event owned by the caller.
func (s *Service) DetachCategory(ctx context.Context, id, categoryID uuid.UUID) (*Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.lc.DetachCategory(ctx, id, categoryID, userID)
}
