package service

import (
	"strings"

	"nexar/internal/domain/entity"
)

// ListingsPageSize is the fixed page size used by the browse and search
// views.
const ListingsPageSize = 6

// SearchFilter combines the free-text query with the structured filters of
// the listings browse view. Zero-valued fields are no-ops.
type SearchFilter struct {
	Query    string
	Category string
	Brand    string
	PriceMin float64
	PriceMax float64
	YearMin  int
	YearMax  int
	Location string
}

// FilterListings returns the subset of listings matching the filter,
// preserving the relative order of the source slice. It recomputes from
// scratch on every call; the collections involved are small enough that no
// index is kept.
func FilterListings(listings []*entity.Listing, f SearchFilter) []*entity.Listing {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	matched := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if query != "" && !matchesQuery(l, query) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(l.Category, f.Category) {
			continue
		}
		if f.Brand != "" && !strings.EqualFold(l.Brand, f.Brand) {
			continue
		}
		if f.PriceMin > 0 && l.Price < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && l.Price > f.PriceMax {
			continue
		}
		if f.YearMin > 0 && l.Year < f.YearMin {
			continue
		}
		if f.YearMax > 0 && l.Year > f.YearMax {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

// matchesQuery reports whether the free-text query appears in any of the
// searchable fields.
func matchesQuery(l *entity.Listing, query string) bool {
	fields := []string{l.Title, l.Brand, l.Category, l.Location, l.SellerName}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// PaginateListings slices one 1-based page of size ListingsPageSize out of
// the already-filtered sequence. Out-of-range pages yield an empty slice.
func PaginateListings(listings []*entity.Listing, page int) []*entity.Listing {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * ListingsPageSize
	if start >= len(listings) {
		return []*entity.Listing{}
	}

	end := start + ListingsPageSize
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}
