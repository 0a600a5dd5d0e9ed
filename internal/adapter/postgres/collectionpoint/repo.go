// Package collectionpoint implements the CollectionPoint repository using PostgreSQL.
package collectionpoint

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

// Repo provides collection point persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection point repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"cp.id", "cp.owner_id", "cp.name", "cp.address", "cp.contact", "cp.opening_hours",
	"cp.latitude", "cp.longitude", "cp.created_at", "cp.updated_at",
}

const returningColumns = `id, owner_id, name, address, contact, opening_hours, latitude, longitude, created_at, updated_at`

const createSQL = `
INSERT INTO collection_points (id, owner_id, name, address, contact, opening_hours, latitude, longitude, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + returningColumns

const updateSQL = `
UPDATE collection_points
SET name = $2, address = $3, contact = $4, opening_hours = $5, latitude = $6, longitude = $7, updated_at = $8
WHERE id = $1
RETURNING ` + returningColumns

const deleteSQL = `DELETE FROM collection_points WHERE id = $1`

const countSQL = `SELECT count(*) FROM collection_points`

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From("collection_points cp")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a collection point by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CollectionPoint, error) {
	sql, args, err := selectBuilder().Where(squirrel.Eq{"cp.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	cp, err := scanPoint(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collection_point", id)
	}
	return &cp, nil
}

// List returns one page of collection points, newest first, and the total count.
func (r *Repo) List(ctx context.Context, page domain.PageRequest) ([]domain.CollectionPoint, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count collection_points: %w", err)
	}

	sql, args, err := selectBuilder().
		OrderBy("cp.created_at DESC", "cp.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	points, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// Candidates returns every collection point matching the filter, unpaginated,
// newest first. EndingAfter does not apply to collection points.
func (r *Repo) Candidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.CollectionPoint, error) {
	b := selectBuilder().OrderBy("cp.created_at DESC", "cp.id")
	if filter.CategoryID != nil {
		b = b.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM collection_point_categories cpc WHERE cpc.collection_point_id = cp.id AND cpc.category_id = ?)",
			*filter.CategoryID,
		))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidates query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.CollectionPoint, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query collection_points: %w", err)
	}

	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CollectionPoint, error) {
		return scanPoint(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan collection_points: %w", err)
	}
	if points == nil {
		points = []domain.CollectionPoint{}
	}
	return points, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a collection point. A zero ID is replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		id, p.OwnerID, p.Name, p.Address, p.Contact, p.OpeningHours,
		p.Location.Lat, p.Location.Lon, time.Now().UTC(),
	)
	created, err := scanPoint(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection_point", id)
	}
	return &created, nil
}

// Update persists the mutable fields of p. The owner is never changed.
func (r *Repo) Update(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		p.ID, p.Name, p.Address, p.Contact, p.OpeningHours,
		p.Location.Lat, p.Location.Lon, time.Now().UTC(),
	)
	updated, err := scanPoint(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection_point", p.ID)
	}
	return &updated, nil
}

// Delete removes a collection point. Its associations are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "collection_point", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection_point %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanPoint(row pgx.Row) (domain.CollectionPoint, error) {
	var cp domain.CollectionPoint
	err := row.Scan(
		&cp.ID, &cp.OwnerID, &cp.Name, &cp.Address, &cp.Contact, &cp.OpeningHours,
		&cp.Location.Lat, &cp.Location.Lon, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		return domain.CollectionPoint{}, err
	}
	return cp, nil
}
