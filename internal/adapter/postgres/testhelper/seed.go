package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory creates a category whose name starts with prefix and ends with a unique suffix.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Category {
	t.Helper()

	category := domain.Category{
		ID:        uuid.New(),
		Name:      prefix + " " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return category
}

// SeedCollectionPoint creates a collection point owned by ownerID at the given location.
func SeedCollectionPoint(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, at domain.Coordinates) domain.CollectionPoint {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	point := domain.CollectionPoint{
		Placement: domain.Placement{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Location:  at,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    "Ecoponto " + uniqueSuffix(),
		Address: "Rua Teste, 100",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collection_points (id, owner_id, name, address, latitude, longitude, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		point.ID, point.OwnerID, point.Name, point.Address, at.Lat, at.Lon, point.CreatedAt, point.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollectionPoint: %v", err)
	}

	return point
}

// SeedEvent creates an event owned by ownerID. A zero endAt means one hour after startAt.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, at domain.Coordinates, startAt, endAt time.Time) domain.Event {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if endAt.IsZero() {
		endAt = startAt.Add(time.Hour)
	}
	event := domain.Event{
		Placement: domain.Placement{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Location:  at,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "Mutirão " + uniqueSuffix(),
		Description: "Coleta comunitária",
		StartAt:     startAt.UTC().Truncate(time.Microsecond),
		EndAt:       endAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, owner_id, title, description, start_at, end_at, latitude, longitude, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		event.ID, event.OwnerID, event.Title, event.Description, event.StartAt, event.EndAt,
		at.Lat, at.Lon, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return event
}

// Tag links a category to an entity through the association table of the given kind.
func Tag(t *testing.T, pool *pgxpool.Pool, kind domain.EntityType, entityID, categoryID uuid.UUID) {
	t.Helper()

	var sql string
	switch kind {
	case domain.EntityTypeCollectionPoint:
		sql = `INSERT INTO collection_point_categories (collection_point_id, category_id) VALUES ($1, $2)`
	case domain.EntityTypeEvent:
		sql = `INSERT INTO event_categories (event_id, category_id) VALUES ($1, $2)`
	default:
		t.Fatalf("testhelper: Tag: %s is not taggable", kind)
	}

	if _, err := pool.Exec(context.Background(), sql, entityID, categoryID); err != nil {
		t.Fatalf("testhelper: Tag: %v", err)
	}
}
