package collectionpoint

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

const (
	maxNameLength    = 200
	maxAddressLength = 300
	maxContactLength = 100
	maxHoursLength   = 200
)

// CreateInput holds the parameters for creating a collection point.
type CreateInput struct {
	Name         string
	Address      string
	Lat          float64
	Lon          float64
	Contact      *string
	OpeningHours *string
	CategoryIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, requiredText("name", i.Name, maxNameLength)...)
	errs = append(errs, requiredText("address", i.Address, maxAddressLength)...)
	errs = append(errs, optionalText("contact", i.Contact, maxContactLength)...)
	errs = append(errs, optionalText("opening_hours", i.OpeningHours, maxHoursLength)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) draft() domain.CollectionPoint {
	return domain.CollectionPoint{
		Placement:    domain.Placement{Location: domain.Coordinates{Lat: i.Lat, Lon: i.Lon}},
		Name:         strings.TrimSpace(i.Name),
		Address:      strings.TrimSpace(i.Address),
		Contact:      trimOrNil(i.Contact),
		OpeningHours: trimOrNil(i.OpeningHours),
	}
}

// UpdateInput holds the parameters for updating a collection point.
// Nil fields are left unchanged. A non-nil CategoryIDs replaces the
// categories; an empty slice clears them.
type UpdateInput struct {
	ID           uuid.UUID
	Name         *string
	Address      *string
	Lat          *float64
	Lon          *float64
	Contact      *string // ptr("") = clear
	OpeningHours *string // ptr("") = clear
	CategoryIDs  *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = append(errs, requiredText("name", *i.Name, maxNameLength)...)
	}
	if i.Address != nil {
		errs = append(errs, requiredText("address", *i.Address, maxAddressLength)...)
	}
	errs = append(errs, optionalText("contact", i.Contact, maxContactLength)...)
	errs = append(errs, optionalText("opening_hours", i.OpeningHours, maxHoursLength)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply merges the set fields into p.
func (i UpdateInput) apply(p *domain.CollectionPoint) {
	if i.Name != nil {
		p.Name = strings.TrimSpace(*i.Name)
	}
	if i.Address != nil {
		p.Address = strings.TrimSpace(*i.Address)
	}
	if i.Lat != nil {
		p.Location.Lat = *i.Lat
	}
	if i.Lon != nil {
		p.Location.Lon = *i.Lon
	}
	if i.Contact != nil {
		p.Contact = trimOrNil(i.Contact)
	}
	if i.OpeningHours != nil {
		p.OpeningHours = trimOrNil(i.OpeningHours)
	}
}

func requiredText(field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len([]rune(v)) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func optionalText(field string, value *string, maxLen int) []domain.FieldError {
	if value != nil && len([]rune(strings.TrimSpace(*value))) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
