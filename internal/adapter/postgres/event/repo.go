// Package event implements the Event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"e.id", "e.owner_id", "e.title", "e.description", "e.start_at", "e.end_at",
	"e.latitude", "e.longitude", "e.created_at", "e.updated_at",
}

const returningColumns = `id, owner_id, title, description, start_at, end_at, latitude, longitude, created_at, updated_at`

const createSQL = `
INSERT INTO events (id, owner_id, title, description, start_at, end_at, latitude, longitude, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + returningColumns

const updateSQL = `
UPDATE events
SET title = $2, description = $3, start_at = $4, end_at = $5, latitude = $6, longitude = $7, updated_at = $8
WHERE id = $1
RETURNING ` + returningColumns

const deleteSQL = `DELETE FROM events WHERE id = $1`

const countSQL = `SELECT count(*) FROM events WHERE end_at >= now()`

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From("events e")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	sql, args, err := selectBuilder().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	ev, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return &ev, nil
}

// List returns one page of events that have not ended, ordered by start
// time, and their total count.
func (r *Repo) List(ctx context.Context, page domain.PageRequest) ([]domain.Event, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	sql, args, err := selectBuilder().
		Where("e.end_at >= now()").
		OrderBy("e.start_at ASC", "e.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	events, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Candidates returns every event matching the filter, unpaginated, newest first.
func (r *Repo) Candidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Event, error) {
	b := selectBuilder().OrderBy("e.created_at DESC", "e.id")
	if filter.CategoryID != nil {
		b = b.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM event_categories ec WHERE ec.event_id = e.id AND ec.category_id = ?)",
			*filter.CategoryID,
		))
	}
	if filter.EndingAfter != nil {
		b = b.Where(squirrel.GtOrEq{"e.end_at": *filter.EndingAfter})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidates query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.Event, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an event. A zero ID is replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		id, ev.OwnerID, ev.Title, ev.Description, ev.StartAt, ev.EndAt,
		ev.Location.Lat, ev.Location.Lon, time.Now().UTC(),
	)
	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return &created, nil
}

// Update persists the mutable fields of ev. The owner is never changed.
func (r *Repo) Update(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		ev.ID, ev.Title, ev.Description, ev.StartAt, ev.EndAt,
		ev.Location.Lat, ev.Location.Lon, time.Now().UTC(),
	)
	updated, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "event", ev.ID)
	}
	return &updated, nil
}

// Delete removes an event. Associations and participants go by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var ev domain.Event
	err := row.Scan(
		&ev.ID, &ev.OwnerID, &ev.Title, &ev.Description, &ev.StartAt, &ev.EndAt,
		&ev.Location.Lat, &ev.Location.Lon, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	return ev, nil
}
