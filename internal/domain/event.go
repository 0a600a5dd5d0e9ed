package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a community activity (clean-up, collection drive) at a location.
// StartAt is always strictly before EndAt.
type Event struct {
	Placement
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
}

// HasEnded reports whether the event finished before now.
func (e Event) HasEnded(now time.Time) bool {
	return e.EndAt.Before(now)
}

// ValidateSchedule checks the start/end ordering invariant.
func (e Event) ValidateSchedule() []FieldError {
	if e.StartAt.IsZero() || e.EndAt.IsZero() {
		return []FieldError{{Field: "start_at", Message: "start_at and end_at are required"}}
	}
	if !e.StartAt.Before(e.EndAt) {
		return []FieldError{{Field: "end_at", Message: "must be after start_at"}}
	}
	return nil
}

// Participant records a user's subscription to an event.
// There is at most one row per (EventID, UserID); cancelling and
// re-subscribing flips Status on that row.
type Participant struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Status    ParticipantStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the participation is currently subscribed.
func (p Participant) IsActive() bool {
	return p.Status == ParticipantStatusSubscribed
}
