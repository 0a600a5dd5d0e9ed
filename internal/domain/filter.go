package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiscoveryFilter contains the search and pagination parameters of a listing request.
// A nil Center means "no spatial filter"; a nil RadiusMeters means the configured default.
type DiscoveryFilter struct {
	Center       *Coordinates
	RadiusMeters *int
	CategoryID   *uuid.UUID
	Page         PageRequest
}

// IsSearch reports whether the filter needs the proximity engine
// rather than a plain paginated listing.
func (f DiscoveryFilter) IsSearch() bool {
	return f.Center != nil || f.CategoryID != nil
}

// Validate checks coordinates, radius and pagination.
func (f DiscoveryFilter) Validate(maxLimit int) error {
	var errs []FieldError
	if f.Center != nil {
		errs = append(errs, f.Center.Validate("")...)
	}
	if f.RadiusMeters != nil && *f.RadiusMeters < 0 {
		errs = append(errs, FieldError{Field: "radius", Message: "must be >= 0"})
	}
	errs = append(errs, f.Page.fieldErrors(maxLimit)...)

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// CandidateFilter narrows the candidate set loaded by repositories
// before distances are computed.
type CandidateFilter struct {
	CategoryID *uuid.UUID
	// EndingAfter keeps only events whose end_at is at or after the instant.
	// Ignored by repositories of entities without a schedule.
	EndingAfter *time.Time
}
