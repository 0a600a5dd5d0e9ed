// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const categoryColumns = `id, name, created_at`

const getByIDSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

const getByNameSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE lower(name) = lower($1)`

const listSQL = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`

const createSQL = `
INSERT INTO categories (id, name, created_at)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns

const upsertSQL = `
INSERT INTO categories (id, name, created_at)
VALUES ($1, $2, $3)
ON CONFLICT ((lower(name))) DO UPDATE SET name = categories.name
RETURNING ` + categoryColumns

const deleteSQL = `DELETE FROM categories WHERE id = $1`

const countExistingSQL = `SELECT count(*) FROM categories WHERE id = ANY($1::uuid[])`

const usageSQL = `
SELECT c.id,
       (SELECT count(*) FROM collection_point_categories cpc WHERE cpc.category_id = c.id),
       (SELECT count(*) FROM event_categories ec WHERE ec.category_id = c.id)
FROM categories c
WHERE c.id = ANY($1::uuid[])`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &c, nil
}

// GetByName returns a category by case-insensitive name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "category "+name, uuid.Nil)
	}
	return &c, nil
}

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// CountExisting returns how many of ids refer to existing categories.
// ids must not contain duplicates.
func (r *Repo) CountExisting(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countExistingSQL, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

// Usage returns, for each requested category, how many collection points and
// events reference it. Unknown ids are absent from the map.
func (r *Repo) Usage(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.CategoryUsage, error) {
	result := make(map[uuid.UUID]domain.CategoryUsage, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, usageSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("category usage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			points, events int
		)
		if err := rows.Scan(&id, &points, &events); err != nil {
			return nil, fmt.Errorf("scan category usage: %w", err)
		}
		result[id] = domain.CategoryUsage{CollectionPoints: points, Events: events}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category usage rows: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category. A name that differs only in case from an
// existing one yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	c, err := scanCategory(q.QueryRow(ctx, createSQL, id, name, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &c, nil
}

// Upsert returns the category with the given name, creating it when missing.
// The second result reports whether a row was created.
func (r *Repo) Upsert(ctx context.Context, name string) (*domain.Category, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	c, err := scanCategory(q.QueryRow(ctx, upsertSQL, id, name, time.Now().UTC()))
	if err != nil {
		return nil, false, postgres.MapError(err, "category", id)
	}
	return &c, c.ID == id, nil
}

// Delete removes a category. Returns ErrNotFound if absent and ErrConflict
// while any association still references it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}
