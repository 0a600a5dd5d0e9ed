// Package participant implements the event participation repository using PostgreSQL.
package participant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Repo provides participation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new participant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const participantColumns = `id, event_id, user_id, status, created_at, updated_at`

// The row lock only matters inside a transaction; it serialises concurrent
// subscribe/unsubscribe calls of the same user.
const getSQL = `
SELECT ` + participantColumns + `
FROM event_participants
WHERE event_id = $1 AND user_id = $2
FOR UPDATE`

const createSQL = `
INSERT INTO event_participants (id, event_id, user_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + participantColumns

const setStatusSQL = `
UPDATE event_participants SET status = $2, updated_at = $3
WHERE id = $1
RETURNING ` + participantColumns

const countActiveSQL = `
SELECT event_id, count(*)
FROM event_participants
WHERE event_id = ANY($1::uuid[]) AND status = 'subscribed'
GROUP BY event_id`

const purgeCancelledSQL = `
DELETE FROM event_participants p
USING events e
WHERE p.event_id = e.id
  AND p.status = 'cancelled'
  AND e.end_at < $1`

// Get returns the participation of a user in an event.
func (r *Repo) Get(ctx context.Context, eventID, userID uuid.UUID) (*domain.Participant, error) {
	p, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, eventID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "participant", eventID)
	}
	return &p, nil
}

// Create subscribes a user to an event. A second row for the same pair yields
// ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, eventID, userID uuid.UUID) (*domain.Participant, error) {
	id := uuid.New()
	p, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		id, eventID, userID, string(domain.ParticipantStatusSubscribed), time.Now().UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}
	return &p, nil
}

// SetStatus changes the status of an existing participation.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus) (*domain.Participant, error) {
	p, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setStatusSQL,
		id, string(status), time.Now().UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}
	return &p, nil
}

// CountActive returns the number of subscribed participants per event.
// Events without participants are absent from the map.
func (r *Repo) CountActive(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, countActiveSQL, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventID uuid.UUID
			count   int
		)
		if err := rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("scan participant count: %w", err)
		}
		result[eventID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("participant count rows: %w", err)
	}

	return result, nil
}

// DeleteCancelledEndedBefore removes cancelled participations of events that
// ended before cutoff and returns how many rows were deleted.
func (r *Repo) DeleteCancelledEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, purgeCancelledSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge cancelled participants: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		status string
	)
	if err := row.Scan(&p.ID, &p.EventID, &p.UserID, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Participant{}, err
	}
	p.Status = domain.ParticipantStatus(status)
	return p, nil
}
