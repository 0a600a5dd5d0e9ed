package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// CreateInput holds the parameters for creating an event.
type CreateInput struct {
	Title       string
	Description string
	Lat         float64
	Lon         float64
	StartAt     time.Time
	EndAt       time.Time
	CategoryIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
// Schedule ordering is checked by the lifecycle strategy.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len([]rune(title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len([]rune(i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) draft() domain.Event {
	return domain.Event{
		Placement:   domain.Placement{Location: domain.Coordinates{Lat: i.Lat, Lon: i.Lon}},
		Title:       strings.TrimSpace(i.Title),
		Description: strings.TrimSpace(i.Description),
		StartAt:     i.StartAt,
		EndAt:       i.EndAt,
	}
}

// UpdateInput holds the parameters for updating an event.
// Nil fields are left unchanged.
type UpdateInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Lat         *float64
	Lon         *float64
	StartAt     *time.Time
	EndAt       *time.Time
	CategoryIDs *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len([]rune(title)) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Description != nil && len([]rune(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) apply(e *domain.Event) {
	if i.Title != nil {
		e.Title = strings.TrimSpace(*i.Title)
	}
	if i.Description != nil {
		e.Description = strings.TrimSpace(*i.Description)
	}
	if i.Lat != nil {
		e.Location.Lat = *i.Lat
	}
	if i.Lon != nil {
		e.Location.Lon = *i.Lon
	}
	if i.StartAt != nil {
		e.StartAt = *i.StartAt
	}
	if i.EndAt != nil {
		e.EndAt = *i.EndAt
	}
}
