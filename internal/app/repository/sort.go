package repository

import (
	"sort"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortProducts orders products in place by the given key. The sort is
// stable: products with equal keys keep their relative input order, which
// callers rely on since popularity and price collisions are common at scale.
func sortProducts(products []model.Product, key model.SortKey) {
	switch key {
	case model.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case model.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case model.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case model.SortName:
		// Collators are not safe for concurrent use, so build one per call.
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case model.SortPopularity:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Popularity > products[j].Popularity
		})
	}
}
