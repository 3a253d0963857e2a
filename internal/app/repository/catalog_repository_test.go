package repository

import (
	"testing"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: "prod-1", Name: "zebra print shirt", Category: "Clothing", Brand: "StyleLine", Price: 30, Rating: 4.0, Popularity: 50, InStock: true, Tags: []string{"trending"}},
		{ID: "prod-2", Name: "Anvil stand", Category: "Home & Garden", Brand: "HomeMax", Price: 20, Rating: 4.5, Popularity: 80, InStock: false, Tags: []string{}},
		{ID: "prod-3", Name: "mystery novel", Category: "Books", Brand: "ReadWell", Price: 10, Rating: 3.5, Popularity: 50, InStock: true, Tags: []string{"bestseller", "trending"}},
		{ID: "prod-4", Name: "Cookbook classics", Category: "Books", Brand: "ReadWell", Price: 20, Rating: 5.0, Popularity: 10, InStock: true, Tags: []string{"premium"}},
	}
}

func TestCatalogRepository_FindByID(t *testing.T) {
	repo := NewCatalogRepository(fixtureProducts())

	p, ok := repo.FindByID("prod-3")
	require.True(t, ok)
	assert.Equal(t, "mystery novel", p.Name)

	_, ok = repo.FindByID("prod-999")
	assert.False(t, ok)
}

func TestCatalogRepository_FindWithFilter_SubsetInCatalogOrder(t *testing.T) {
	repo := NewCatalogRepository(fixtureProducts())

	spec := model.DefaultFilterSpec()
	spec.InStockOnly = true

	matched := repo.FindWithFilter(spec, model.SortName)
	require.Len(t, matched, 3)
	for _, p := range matched {
		assert.True(t, p.InStock)
	}
}

func TestCatalogRepository_FindWithFilter_Idempotent(t *testing.T) {
	repo := NewCatalogRepository(catalog.Generate(500))

	spec := model.DefaultFilterSpec()
	spec.MinRating = 4.0
	spec.InStockOnly = true

	once := repo.FindWithFilter(spec, model.SortPopularity)

	// Filtering an already-filtered set with the same spec changes nothing.
	again := NewCatalogRepository(once).FindWithFilter(spec, model.SortPopularity)
	assert.Equal(t, once, again)
}

func TestCatalogRepository_FindWithFilter_OrderPreserving(t *testing.T) {
	products := catalog.Generate(300)
	repo := NewCatalogRepository(products)

	spec := model.DefaultFilterSpec()
	spec.Category = "Books"

	position := make(map[string]int, len(products))
	for i, p := range products {
		position[p.ID] = i
	}

	matched := repo.FindWithFilter(spec, model.SortPopularity)
	// Verify subset.
	for _, p := range matched {
		_, ok := position[p.ID]
		require.True(t, ok)
		assert.Equal(t, "Books", p.Category)
	}
}

func TestSortProducts_Keys(t *testing.T) {
	products := fixtureProducts()

	sortProducts(products, model.SortPriceAsc)
	assert.Equal(t, []string{"prod-3", "prod-2", "prod-4", "prod-1"}, ids(products))

	products = fixtureProducts()
	sortProducts(products, model.SortPriceDesc)
	assert.Equal(t, "prod-1", products[0].ID)

	products = fixtureProducts()
	sortProducts(products, model.SortRating)
	assert.Equal(t, []string{"prod-4", "prod-2", "prod-1", "prod-3"}, ids(products))

	products = fixtureProducts()
	sortProducts(products, model.SortPopularity)
	assert.Equal(t, "prod-2", products[0].ID)
	assert.Equal(t, "prod-4", products[3].ID)
}

func TestSortProducts_NameIsLocaleAware(t *testing.T) {
	// Byte order would put "Anvil" and "Cookbook" before the lowercase
	// names; the collator interleaves them alphabetically.
	products := fixtureProducts()
	sortProducts(products, model.SortName)
	assert.Equal(t, []string{"prod-2", "prod-4", "prod-3", "prod-1"}, ids(products))
}

func TestSortProducts_StableOnEqualKeys(t *testing.T) {
	// prod-1 and prod-3 share popularity 50; input order must survive.
	products := fixtureProducts()
	sortProducts(products, model.SortPopularity)
	assert.Equal(t, []string{"prod-2", "prod-1", "prod-3", "prod-4"}, ids(products))

	// prod-2 and prod-4 share price 20.
	products = fixtureProducts()
	sortProducts(products, model.SortPriceAsc)
	assert.Equal(t, []string{"prod-3", "prod-2", "prod-4", "prod-1"}, ids(products))
}

func TestSortProducts_SortTwiceIsNoOp(t *testing.T) {
	keys := []model.SortKey{
		model.SortPopularity, model.SortPriceAsc, model.SortPriceDesc,
		model.SortRating, model.SortName,
	}
	for _, key := range keys {
		products := catalog.Generate(200)
		sortProducts(products, key)
		once := ids(products)
		sortProducts(products, key)
		assert.Equal(t, once, ids(products), "key %s", key)
	}
}

func TestSortProducts_UnknownKeyFallsBackToPopularity(t *testing.T) {
	products := fixtureProducts()
	sortProducts(products, model.SortKey("newest"))

	expected := fixtureProducts()
	sortProducts(expected, model.SortPopularity)
	assert.Equal(t, ids(expected), ids(products))
}

func TestCatalogRepository_Indexes(t *testing.T) {
	products := catalog.Generate(200)
	repo := NewCatalogRepository(products)

	total := 0
	for _, category := range model.Categories {
		bucket := repo.FindByCategory(category)
		assert.Len(t, bucket, 20)
		for _, p := range bucket {
			assert.Equal(t, category, p.Category)
		}
		total += len(bucket)
	}
	assert.Equal(t, 200, total)

	for _, brand := range model.Brands {
		for _, p := range repo.FindByBrand(brand) {
			assert.Equal(t, brand, p.Brand)
		}
	}

	for _, p := range repo.FindFeatured() {
		assert.True(t, p.Featured)
	}
}

func TestCatalogRepository_Stats(t *testing.T) {
	repo := NewCatalogRepository(fixtureProducts())

	stats := repo.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.InStock)
	assert.Equal(t, 0, stats.OnSale)
	assert.Equal(t, 20.0, stats.AvgPrice)
	assert.Equal(t, 4.25, stats.AvgRating)
}

func TestCatalogRepository_StatsEmpty(t *testing.T) {
	repo := NewCatalogRepository(nil)
	stats := repo.Stats()
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AvgPrice)
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
