package rest

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// parseDiscovery reads ?lat&lon&radius&categoryId&page&limit. Range checks
// are left to domain.DiscoveryFilter.Validate; only syntax is checked here.
func parseDiscovery(r *http.Request, defaultLimit int) (domain.DiscoveryFilter, error) {
	q := r.URL.Query()
	var errs []domain.FieldError

	filter := domain.DiscoveryFilter{
		Page: domain.PageRequest{Page: 1, Limit: defaultLimit},
	}

	lat, latSet, fe := floatParam(q, "lat")
	errs = append(errs, fe...)
	lon, lonSet, fe := floatParam(q, "lon")
	errs = append(errs, fe...)
	switch {
	case latSet && lonSet:
		filter.Center = &domain.Coordinates{Lat: lat, Lon: lon}
	case latSet != lonSet:
		errs = append(errs, domain.FieldError{Field: "lat", Message: "lat and lon must be given together"})
	}

	if radius, ok, fe := intParam(q, "radius"); ok {
		filter.RadiusMeters = &radius
	} else {
		errs = append(errs, fe...)
	}

	if raw := q.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "categoryId", Message: "must be a valid UUID"})
		} else {
			filter.CategoryID = &id
		}
	}

	if page, ok, fe := intParam(q, "page"); ok {
		filter.Page.Page = page
	} else {
		errs = append(errs, fe...)
	}
	if limit, ok, fe := intParam(q, "limit"); ok {
		filter.Page.Limit = limit
	} else {
		errs = append(errs, fe...)
	}

	if len(errs) > 0 {
		return domain.DiscoveryFilter{}, domain.NewValidationErrors(errs)
	}
	return filter, nil
}

func floatParam(q url.Values, name string) (float64, bool, []domain.FieldError) {
	raw := q.Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, []domain.FieldError{{Field: name, Message: "must be a finite number"}}
	}
	return v, true, nil
}

func intParam(q url.Values, name string) (int, bool, []domain.FieldError) {
	raw := q.Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, []domain.FieldError{{Field: name, Message: "must be an integer"}}
	}
	return v, true, nil
}
