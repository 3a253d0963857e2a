package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProduct() Product {
	return Product{
		ID:          "prod-1",
		Name:        "Premium Electronic 001",
		Description: "Durable electronics from TechPro. Perfect for everyday use with exceptional quality and performance.",
		Price:       199.99,
		Category:    "Electronics",
		Brand:       "TechPro",
		Rating:      4.2,
		ReviewCount: 120,
		InStock:     true,
		Tags:        []string{"bestseller", "trending"},
		Popularity:  55.5,
	}
}

func TestFilterSpec_Defaults_MatchEverything(t *testing.T) {
	spec := DefaultFilterSpec()
	p := sampleProduct()
	assert.True(t, spec.Matches(&p))

	outOfStock := sampleProduct()
	outOfStock.InStock = false
	assert.True(t, spec.Matches(&outOfStock))
}

func TestFilterSpec_SearchTerm(t *testing.T) {
	p := sampleProduct()

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{"matches name case-insensitively", "PREMIUM", true},
		{"matches description", "everyday use", true},
		{"matches brand", "techpro", true},
		{"matches category", "electronics", true},
		{"no match fails", "bicycle", false},
		{"empty imposes no constraint", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultFilterSpec()
			spec.SearchTerm = tt.search
			assert.Equal(t, tt.want, spec.Matches(&p))
		})
	}
}

func TestFilterSpec_CategoryAndBrand(t *testing.T) {
	p := sampleProduct()

	spec := DefaultFilterSpec()
	spec.Category = "Electronics"
	assert.True(t, spec.Matches(&p))

	spec.Category = "Books"
	assert.False(t, spec.Matches(&p))

	spec = DefaultFilterSpec()
	spec.Brand = "TechPro"
	assert.True(t, spec.Matches(&p))

	spec.Brand = "HomeMax"
	assert.False(t, spec.Matches(&p))
}

func TestFilterSpec_PriceRange_ClosedInterval(t *testing.T) {
	p := sampleProduct()
	p.Price = 100

	spec := DefaultFilterSpec()

	spec.PriceRange = PriceRange{Min: 100, Max: 200}
	assert.True(t, spec.Matches(&p), "lower bound is inclusive")

	spec.PriceRange = PriceRange{Min: 50, Max: 100}
	assert.True(t, spec.Matches(&p), "upper bound is inclusive")

	spec.PriceRange = PriceRange{Min: 100.01, Max: 200}
	assert.False(t, spec.Matches(&p))

	spec.PriceRange = PriceRange{Min: 0, Max: 99.99}
	assert.False(t, spec.Matches(&p))
}

func TestFilterSpec_MinRating(t *testing.T) {
	p := sampleProduct()
	p.Rating = 4.0

	spec := DefaultFilterSpec()
	spec.MinRating = 4.0
	assert.True(t, spec.Matches(&p), "equal rating passes")

	spec.MinRating = 4.1
	assert.False(t, spec.Matches(&p))
}

func TestFilterSpec_InStockOnly(t *testing.T) {
	p := sampleProduct()
	p.InStock = false

	spec := DefaultFilterSpec()
	assert.True(t, spec.Matches(&p))

	spec.InStockOnly = true
	assert.False(t, spec.Matches(&p))
}

func TestFilterSpec_Tags_RequiresAll(t *testing.T) {
	p := sampleProduct() // bestseller, trending

	spec := DefaultFilterSpec()
	spec.Tags = []string{"bestseller"}
	assert.True(t, spec.Matches(&p))

	spec.Tags = []string{"bestseller", "trending"}
	assert.True(t, spec.Matches(&p))

	// ALL required tags must be present, not any.
	spec.Tags = []string{"bestseller", "premium"}
	assert.False(t, spec.Matches(&p))

	spec.Tags = []string{}
	assert.True(t, spec.Matches(&p))
}

func TestFilterSpec_Active(t *testing.T) {
	spec := DefaultFilterSpec()
	assert.False(t, spec.Active())

	spec.SearchTerm = "x"
	assert.True(t, spec.Active())

	spec = DefaultFilterSpec()
	spec.Category = "Books"
	assert.True(t, spec.Active())

	spec = DefaultFilterSpec()
	spec.Brand = "TechPro"
	assert.True(t, spec.Active())

	spec = DefaultFilterSpec()
	spec.MinRating = 1
	assert.True(t, spec.Active())

	spec = DefaultFilterSpec()
	spec.InStockOnly = true
	assert.True(t, spec.Active())

	spec = DefaultFilterSpec()
	spec.Tags = []string{"premium"}
	assert.True(t, spec.Active())

	// The price range is deliberately excluded from the active check.
	spec = DefaultFilterSpec()
	spec.PriceRange = PriceRange{Min: 50, Max: 60}
	assert.False(t, spec.Active())
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
	assert.Equal(t, SortRating, ParseSortKey("rating"))
	assert.Equal(t, SortName, ParseSortKey("name"))
	assert.Equal(t, SortPopularity, ParseSortKey("popularity"))

	// Unknown keys fall back to the default ordering.
	assert.Equal(t, SortPopularity, ParseSortKey("newest"))
	assert.Equal(t, SortPopularity, ParseSortKey(""))
}

func TestDefaultFilterSpec(t *testing.T) {
	spec := DefaultFilterSpec()
	assert.Equal(t, "", spec.SearchTerm)
	assert.Equal(t, FilterAll, spec.Category)
	assert.Equal(t, FilterAll, spec.Brand)
	assert.Equal(t, PriceRange{Min: 0, Max: 1000}, spec.PriceRange)
	assert.Equal(t, 0.0, spec.MinRating)
	assert.False(t, spec.InStockOnly)
	assert.Empty(t, spec.Tags)
}
