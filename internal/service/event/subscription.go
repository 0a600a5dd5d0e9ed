package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/pkg/ctxutil"
)

// Subscribe registers the caller as a participant of eventID.
//
// Ended events and existing active participations are rejected with a
// validation error. A cancelled participation is reactivated in place.
func (s *Service) Subscribe(ctx context.Context, eventID uuid.UUID) (*domain.Participant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var participant *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ev, err := s.events.GetByID(txCtx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if ev.HasEnded(s.now()) {
			return domain.NewValidationError("event_id", "event has already ended")
		}

		existing, err := s.participants.Get(txCtx, eventID, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			participant, err = s.participants.Create(txCtx, eventID, userID)
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewValidationError("event_id", "already subscribed")
			}
			if err != nil {
				return fmt.Errorf("create participant: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("get participant: %w", err)
		}

		if existing.IsActive() {
			return domain.NewValidationError("event_id", "already subscribed")
		}

		participant, err = s.participants.SetStatus(txCtx, existing.ID, domain.ParticipantStatusSubscribed)
		if err != nil {
			return fmt.Errorf("reactivate participant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subscribed to event",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
		slog.String("participant_id", participant.ID.String()),
	)

	return participant, nil
}

// Unsubscribe cancels the caller's active participation in eventID.
func (s *Service) Unsubscribe(ctx context.Context, eventID uuid.UUID) (*domain.Participant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var participant *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.events.GetByID(txCtx, eventID); err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		existing, err := s.participants.Get(txCtx, eventID, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("event_id", "not subscribed")
		}
		if err != nil {
			return fmt.Errorf("get participant: %w", err)
		}
		if !existing.IsActive() {
			return domain.NewValidationError("event_id", "not subscribed")
		}

		participant, err = s.participants.SetStatus(txCtx, existing.ID, domain.ParticipantStatusCancelled)
		if err != nil {
			return fmt.Errorf("cancel participant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "unsubscribed from event",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
	)

	return participant, nil
}
