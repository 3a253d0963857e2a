package repository

import (
	"sync"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
	"github.com/minjae-kim/storefront-backend/pkg/util"
)

// CatalogStats are aggregate figures over the full catalog.
type CatalogStats struct {
	Total     int     `json:"total"`
	InStock   int     `json:"in_stock"`
	OnSale    int     `json:"on_sale"`
	AvgPrice  float64 `json:"avg_price"`
	AvgRating float64 `json:"avg_rating"`
}

type CatalogRepository interface {
	All() []model.Product
	Count() int
	FindByID(id string) (*model.Product, bool)
	// FindWithFilter returns the products matching spec, in catalog order,
	// sorted by key. The result is a fresh slice; the catalog is never
	// reordered.
	FindWithFilter(spec model.FilterSpec, key model.SortKey) []model.Product
	FindByCategory(category string) []model.Product
	FindByBrand(brand string) []model.Product
	FindFeatured() []model.Product
	Stats() CatalogStats
}

// catalogRepository serves a fixed, read-only product set. The category and
// brand buckets and the stats are derived caches over the immutable catalog,
// built lazily and never mutated afterwards.
type catalogRepository struct {
	products []model.Product
	byID     map[string]int

	indexOnce  sync.Once
	byCategory map[string][]model.Product
	byBrand    map[string][]model.Product
	featured   []model.Product

	statsOnce sync.Once
	stats     CatalogStats
}

func NewCatalogRepository(products []model.Product) CatalogRepository {
	byID := make(map[string]int, len(products))
	for i := range products {
		byID[products[i].ID] = i
	}
	return &catalogRepository{
		products: products,
		byID:     byID,
	}
}

func (r *catalogRepository) All() []model.Product {
	return r.products
}

func (r *catalogRepository) Count() int {
	return len(r.products)
}

func (r *catalogRepository) FindByID(id string) (*model.Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.products[i], true
}

func (r *catalogRepository) FindWithFilter(spec model.FilterSpec, key model.SortKey) []model.Product {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"search":        spec.SearchTerm,
		"category":      spec.Category,
		"brand":         spec.Brand,
		"price_min":     spec.PriceRange.Min,
		"price_max":     spec.PriceRange.Max,
		"min_rating":    spec.MinRating,
		"in_stock_only": spec.InStockOnly,
		"tags":          spec.Tags,
		"sort":          key,
	})

	matched := make([]model.Product, 0, len(r.products))
	for i := range r.products {
		if spec.Matches(&r.products[i]) {
			matched = append(matched, r.products[i])
		}
	}

	sortProducts(matched, key)
	return matched
}

func (r *catalogRepository) buildIndexes() {
	r.byCategory = make(map[string][]model.Product, len(model.Categories))
	r.byBrand = make(map[string][]model.Product, len(model.Brands))
	for _, p := range r.products {
		r.byCategory[p.Category] = append(r.byCategory[p.Category], p)
		r.byBrand[p.Brand] = append(r.byBrand[p.Brand], p)
		if p.Featured {
			r.featured = append(r.featured, p)
		}
	}
}

func (r *catalogRepository) FindByCategory(category string) []model.Product {
	r.indexOnce.Do(r.buildIndexes)
	return r.byCategory[category]
}

func (r *catalogRepository) FindByBrand(brand string) []model.Product {
	r.indexOnce.Do(r.buildIndexes)
	return r.byBrand[brand]
}

func (r *catalogRepository) FindFeatured() []model.Product {
	r.indexOnce.Do(r.buildIndexes)
	return r.featured
}

func (r *catalogRepository) Stats() CatalogStats {
	r.statsOnce.Do(func() {
		stats := CatalogStats{Total: len(r.products)}
		var priceSum, ratingSum float64
		for _, p := range r.products {
			if p.InStock {
				stats.InStock++
			}
			if p.OriginalPrice != nil {
				stats.OnSale++
			}
			priceSum += p.Price
			ratingSum += p.Rating
		}
		if stats.Total > 0 {
			stats.AvgPrice = util.RoundTo(priceSum/float64(stats.Total), 2)
			stats.AvgRating = util.RoundTo(ratingSum/float64(stats.Total), 2)
		}
		r.stats = stats
	})
	return r.stats
}
