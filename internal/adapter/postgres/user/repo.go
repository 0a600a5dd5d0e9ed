// Package user implements the User repository using PostgreSQL.
// Accounts are provisioned by the external identity service; this package only
// reads them for owner summaries and inserts them for seeding.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, avatar_url, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const createSQL = `
INSERT INTO users (id, email, name, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + userColumns

const summariesSQL = `SELECT id, name, avatar_url FROM users WHERE id = ANY($1::uuid[])`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		id, u.Email, u.Name, u.AvatarURL, time.Now().UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &created, nil
}

// Summaries returns the public owner summary of every existing user in ids.
func (r *Repo) Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.OwnerSummary, error) {
	result := make(map[uuid.UUID]domain.OwnerSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, summariesSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("user summaries: %w", err)
	}

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OwnerSummary, error) {
		var s domain.OwnerSummary
		err := row.Scan(&s.ID, &s.Name, &s.AvatarURL)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan user summaries: %w", err)
	}

	for _, s := range summaries {
		result[s.ID] = s
	}
	return result, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
