package domain

import (
	"math"
	"strconv"
)

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip. It is never negative and
// saturates at math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// MaxOffset bounds page*limit so offsets stay well inside int64 and the
// OFFSET a database accepts.
const MaxOffset = 1_000_000_000

// Validate rejects page or limit below 1, limit above maxLimit and pages
// whose offset exceeds MaxOffset.
// maxLimit <= 0 disables the upper bound.
func (p PageRequest) Validate(maxLimit int) error {
	if errs := p.fieldErrors(maxLimit); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (p PageRequest) fieldErrors(maxLimit int) []FieldError {
	var errs []FieldError
	if p.Page < 1 {
		errs = append(errs, FieldError{Field: "page", Message: "must be >= 1"})
	} else if p.Limit >= 1 && p.Page-1 > MaxOffset/p.Limit {
		errs = append(errs, FieldError{Field: "page", Message: "is too large"})
	}
	if p.Limit < 1 {
		errs = append(errs, FieldError{Field: "limit", Message: "must be >= 1"})
	} else if maxLimit > 0 && p.Limit > maxLimit {
		errs = append(errs, FieldError{Field: "limit", Message: "must be <= " + strconv.Itoa(maxLimit)})
	}
	return errs
}

// Page is one page of results plus the pre-pagination total.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// NewPage builds a Page, computing TotalPages = ceil(total/limit).
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Limit > 0 {
		totalPages = total / req.Limit
		if total%req.Limit != 0 {
			totalPages++
		}
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}

// Paginate slices an already filtered and sorted result set.
func Paginate[T any](all []T, req PageRequest) Page[T] {
	start := min(req.Offset(), len(all))
	end := start
	if req.Limit > 0 {
		end = start + min(req.Limit, len(all)-start)
	}
	return NewPage(all[start:end], len(all), req)
}
