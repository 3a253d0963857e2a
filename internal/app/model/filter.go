package model

import "strings"

// FilterAll is the wildcard matching every category or brand.
const FilterAll = "all"

// Default price domain. The range filter starts fully open; prices never
// reach the upper bound, so the default imposes no constraint.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 1000
)

type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRating     SortKey = "rating"
	SortName       SortKey = "name"
)

// ParseSortKey maps a raw value to a SortKey. Unknown values fall back to
// popularity rather than failing.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortName:
		return SortKey(s)
	default:
		return SortPopularity
	}
}

// PriceRange is a closed interval; Min <= Max holds for every spec that
// reaches the predicate.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpec is the set of user-chosen constraints narrowing the catalog.
// Fields combine conjunctively. The predicate assumes a well-formed spec;
// validation happens at the update boundary, not here.
type FilterSpec struct {
	SearchTerm  string     `json:"search_term"`
	Category    string     `json:"category"`
	Brand       string     `json:"brand"`
	PriceRange  PriceRange `json:"price_range"`
	MinRating   float64    `json:"min_rating"`
	InStockOnly bool       `json:"in_stock_only"`
	Tags        []string   `json:"tags"`
}

// DefaultFilterSpec returns the spec that imposes no constraints beyond the
// full price domain.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		SearchTerm:  "",
		Category:    FilterAll,
		Brand:       FilterAll,
		PriceRange:  PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		MinRating:   0,
		InStockOnly: false,
		Tags:        []string{},
	}
}

// Matches reports whether the product passes every active constraint.
// Pure; short-circuits on the first failing field.
func (f *FilterSpec) Matches(p *Product) bool {
	if f.SearchTerm != "" {
		search := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			return false
		}
	}

	if f.Category != FilterAll && p.Category != f.Category {
		return false
	}

	if f.Brand != FilterAll && p.Brand != f.Brand {
		return false
	}

	if p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max {
		return false
	}

	if p.Rating < f.MinRating {
		return false
	}

	if f.InStockOnly && !p.InStock {
		return false
	}

	for _, tag := range f.Tags {
		if !p.HasTag(tag) {
			return false
		}
	}

	return true
}

// Active reports whether any filter differs from the default. The price
// range is deliberately excluded from this check.
func (f *FilterSpec) Active() bool {
	return f.SearchTerm != "" ||
		f.Category != FilterAll ||
		f.Brand != FilterAll ||
		f.MinRating > 0 ||
		f.InStockOnly ||
		len(f.Tags) > 0
}
