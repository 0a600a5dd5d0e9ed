// Package association implements the per-kind category association
// repositories (collection_point_categories, event_categories) using PostgreSQL.
package association

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

// table describes the junction table of one entity kind.
type table struct {
	name     string
	entityFK string
}

var tables = map[domain.EntityType]table{
	domain.EntityTypeCollectionPoint: {name: "collection_point_categories", entityFK: "collection_point_id"},
	domain.EntityTypeEvent:           {name: "event_categories", entityFK: "event_id"},
}

// Repo provides association persistence for a single entity kind.
type Repo struct {
	pool  *pgxpool.Pool
	kind  domain.EntityType
	table table
}

// New creates an association repository for kind.
// Panics if kind is not taggable.
func New(pool *pgxpool.Pool, kind domain.EntityType) *Repo {
	t, ok := tables[kind]
	if !ok {
		panic(fmt.Sprintf("association: %s has no category table", kind))
	}
	return &Repo{pool: pool, kind: kind, table: t}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether the entity is linked to the category.
func (r *Repo) Exists(ctx context.Context, entityID, categoryID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(r.table.name).
		Where(squirrel.Eq{r.table.entityFK: entityID, "category_id": categoryID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s exists: %w", r.table.name, err)
	}
	return exists, nil
}

// CategoriesOf returns the categories linked to an entity ordered by name.
func (r *Repo) CategoriesOf(ctx context.Context, entityID uuid.UUID) ([]domain.Category, error) {
	grouped, err := r.CategoriesOfMany(ctx, []uuid.UUID{entityID})
	if err != nil {
		return nil, err
	}
	categories := grouped[entityID]
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// CategoriesOfMany returns the categories of several entities grouped by entity id.
// Entities without categories are absent from the map.
func (r *Repo) CategoriesOfMany(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.Category, error) {
	result := make(map[uuid.UUID][]domain.Category, len(entityIDs))
	if len(entityIDs) == 0 {
		return result, nil
	}

	sql, args, err := postgres.Builder().
		Select("a."+r.table.entityFK, "c.id", "c.name", "c.created_at").
		From(r.table.name + " a").
		Join("categories c ON c.id = a.category_id").
		Where(squirrel.Expr("a."+r.table.entityFK+" = ANY(?)", entityIDs)).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s categories: %w", r.table.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entityID uuid.UUID
			c        domain.Category
		)
		if err := rows.Scan(&entityID, &c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table.name, err)
		}
		result[entityID] = append(result[entityID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", r.table.name, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert links an entity to a category. A duplicate pair yields ErrAlreadyExists,
// a missing entity or category yields ErrNotFound.
func (r *Repo) Insert(ctx context.Context, entityID, categoryID uuid.UUID) (*domain.CategoryAssociation, error) {
	a := domain.CategoryAssociation{
		ID:         uuid.New(),
		EntityID:   entityID,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}

	sql, args, err := postgres.Builder().
		Insert(r.table.name).
		Columns("id", r.table.entityFK, "category_id", "created_at").
		Values(a.ID, a.EntityID, a.CategoryID, a.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, r.table.name, a.ID)
	}
	return &a, nil
}

// InsertMany links an entity to every category in categoryIDs in one statement
// and returns the number of rows inserted. Existing pairs are skipped.
func (r *Repo) InsertMany(ctx context.Context, entityID uuid.UUID, categoryIDs []uuid.UUID) (int, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	b := postgres.Builder().
		Insert(r.table.name).
		Columns("id", r.table.entityFK, "category_id", "created_at").
		Suffix(fmt.Sprintf("ON CONFLICT (%s, category_id) DO NOTHING", r.table.entityFK))
	for _, categoryID := range categoryIDs {
		b = b.Values(uuid.New(), entityID, categoryID, now)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.table.name, entityID)
	}
	return int(tag.RowsAffected()), nil
}

// Delete unlinks an entity from a category and reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, entityID, categoryID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Delete(r.table.name).
		Where(squirrel.Eq{r.table.entityFK: entityID, "category_id": categoryID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, r.table.name, entityID)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAllForEntity removes every association of an entity and returns the
// category ids that were unlinked.
func (r *Repo) DeleteAllForEntity(ctx context.Context, entityID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Delete(r.table.name).
		Where(squirrel.Eq{r.table.entityFK: entityID}).
		Suffix("RETURNING category_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete all: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, r.table.name, entityID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan removed %s: %w", r.table.name, err)
	}
	return ids, nil
}
