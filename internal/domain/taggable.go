package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate returns field errors for out-of-range or non-finite coordinates.
// prefix is prepended to the field names ("" gives "lat"/"lon").
func (c Coordinates) Validate(prefix string) []FieldError {
	var errs []FieldError
	// Written as negated ranges so NaN fails both checks.
	if !(c.Lat >= -90 && c.Lat <= 90) {
		errs = append(errs, FieldError{Field: prefix + "lat", Message: "must be between -90 and 90"})
	}
	if !(c.Lon >= -180 && c.Lon <= 180) {
		errs = append(errs, FieldError{Field: prefix + "lon", Message: "must be between -180 and 180"})
	}
	return errs
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", c.Lat, c.Lon)
}

// Placement holds the fields shared by every taggable entity.
// OwnerID is set once at creation and never changes.
type Placement struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Location  Coordinates
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Base returns the shared placement fields.
func (p Placement) Base() Placement { return p }

// Taggable is implemented by entities that carry categories and a location:
// CollectionPoint and Event.
type Taggable interface {
	Base() Placement
}

// OwnerSummary is the public projection of an entity owner.
type OwnerSummary struct {
	ID        uuid.UUID
	Name      string
	AvatarURL *string
}

// Listing is a taggable entity hydrated with its relations.
// DistanceMeters is set only for searches with a center point;
// ParticipantCount only for events.
type Listing[E Taggable] struct {
	Item             E
	Owner            OwnerSummary
	Categories       []Category
	DistanceMeters   *int
	ParticipantCount *int
}

// CategoryIDs returns the ids of the attached categories in listing order.
func (l Listing[E]) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.Categories))
	for i, c := range l.Categories {
		ids[i] = c.ID
	}
	return ids
}

// DeleteResult confirms the removal of an entity.
type DeleteResult struct {
	ID      uuid.UUID
	Message string
}
