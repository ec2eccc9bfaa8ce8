// Package paging slices in-memory collections into pages.
package paging

import (
	"fmt"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/pkg/validator"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

type Meta struct {
	TotalItems int    `json:"total_items"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
	Showing    string `json:"showing"`
}

// Normalize applies the page/limit defaults in place and reports out-of-range values.
func Normalize(page, limit *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if *page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be greater than 0",
		})
	}
	if *page == 0 {
		*page = 1
	}

	if *limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be greater than 0",
		})
	}
	if *limit == 0 {
		*limit = DefaultLimit
	}
	if *limit > MaxLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must not exceed %d", MaxLimit),
		})
	}

	return errs
}

// Slice returns the requested page of items. Pages past the end are empty,
// never nil, so they encode as [].
func Slice[T any](items []T, page, limit int) ([]T, Meta) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	meta := Meta{
		TotalItems: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page > totalPages {
		meta.Showing = fmt.Sprintf("0 of %d", total)
		return []T{}, meta
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	meta.Showing = fmt.Sprintf("%d-%d of %d", start+1, end, total)

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, meta
}
