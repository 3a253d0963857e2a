// Package catalog synthesizes the in-memory product dataset the server
// operates on. The catalog is generated once at startup and never mutated.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
	"github.com/minjae-kim/storefront-backend/pkg/util"
)

var adjectives = []string{
	"Premium", "Pro", "Ultra", "Smart", "Essential", "Advanced",
	"Deluxe", "Classic", "Modern", "Compact", "Professional", "Elite",
}

var descriptors = []string{
	"High-quality", "Durable", "Ergonomic", "Lightweight", "Portable",
	"Versatile", "Innovative", "Reliable", "Stylish", "Efficient",
}

// Category-specific Unsplash photo ids.
var categoryImages = map[string]string{
	"Electronics":            "photo-1498049794561-7780e7231661",
	"Clothing":               "photo-1523381210434-271e8be1f52b",
	"Home & Garden":          "photo-1556228578-0d85b1a4d571",
	"Sports & Outdoors":      "photo-1461896836934-ffe607ba8211",
	"Books":                  "photo-1495446815901-a7297e633e8d",
	"Beauty & Personal Care": "photo-1596462502278-27bfdc403348",
	"Automotive":             "photo-1568605117036-5fe5e7bab0b7",
	"Toys & Games":           "photo-1558060370-d644479cb6f7",
	"Health & Wellness":      "photo-1505751172876-fa1923c5c528",
	"Office Products":        "photo-1484480974693-6ca0a78fb36b",
}

// Category-based color schemes for placeholder backgrounds.
var categoryColors = map[string]string{
	"Electronics":            "4A90E2",
	"Clothing":               "E91E63",
	"Home & Garden":          "4CAF50",
	"Sports & Outdoors":      "FF9800",
	"Books":                  "9C27B0",
	"Beauty & Personal Care": "F06292",
	"Automotive":             "607D8B",
	"Toys & Games":           "FFC107",
	"Health & Wellness":      "8BC34A",
	"Office Products":        "3F51B5",
}

const (
	idPrefix       = "prod-"
	discountChance = 0.3
	discountFactor = 0.8
)

// Tag assignment probabilities. The "limited-edition" tag is part of the
// vocabulary but never assigned by generation.
var tagChances = []struct {
	tag    string
	chance float64
}{
	{"bestseller", 0.3},
	{"new-arrival", 0.2},
	{"trending", 0.25},
	{"eco-friendly", 0.15},
	{"premium", 0.1},
}

// ProductID returns the identifier for the product at generation index i.
// Identifiers encode generation order, which keeps persisted cart entries
// stable across restarts for a fixed catalog size.
func ProductID(i int) string {
	return fmt.Sprintf("%s%d", idPrefix, i+1)
}

// ImageURL derives the image reference for a product. It is a pure function
// of (id, category), so the same product always resolves to the same URL.
func ImageURL(productID, category string) string {
	ordinal, _ := strconv.Atoi(strings.TrimPrefix(productID, idPrefix))

	photo, ok := categoryImages[category]
	if !ok {
		photo = categoryImages["Electronics"]
	}
	color, ok := categoryColors[category]
	if !ok {
		color = categoryColors["Electronics"]
	}

	return fmt.Sprintf(
		"https://images.unsplash.com/%s?auto=format&fit=crop&w=400&q=80&sig=%d&bg=%s",
		photo, ordinal, color,
	)
}

// Generate produces exactly n products from the fixed vocabularies.
// Generation is pseudo-random and not reproducible across runs, but every
// record satisfies the Product invariants.
func Generate(n int) []model.Product {
	r := util.NewRand()
	products := make([]model.Product, 0, n)

	for i := 0; i < n; i++ {
		category := model.Categories[i%len(model.Categories)]
		brand := model.Brands[i%len(model.Brands)]
		adjective := adjectives[i%len(adjectives)]
		descriptor := descriptors[r.Intn(len(descriptors))]

		basePrice := r.Float64()*500 + 10
		discounted := r.Float64() < discountChance

		price := util.RoundTo(basePrice, 2)
		var originalPrice *float64
		if discounted {
			op := price
			originalPrice = &op
			price = util.RoundTo(basePrice*discountFactor, 2)
		}

		tags := []string{}
		for _, tc := range tagChances {
			if r.Float64() < tc.chance {
				tags = append(tags, tc.tag)
			}
		}
		if discounted {
			tags = append(tags, model.TagOnSale)
		}

		id := ProductID(i)

		products = append(products, model.Product{
			ID:   id,
			Name: fmt.Sprintf("%s %s %03d", adjective, singularize(category), i+1),
			Description: fmt.Sprintf(
				"%s %s from %s. Perfect for everyday use with exceptional quality and performance.",
				descriptor, strings.ToLower(category), brand,
			),
			Price:         price,
			OriginalPrice: originalPrice,
			Category:      category,
			Brand:         brand,
			ImageURL:      ImageURL(id, category),
			Rating:        util.RoundTo(3+r.Float64()*2, 1),
			ReviewCount:   util.RandomInt(r, 10, 1009),
			InStock:       r.Float64() < 0.9,
			Tags:          tags,
			Popularity:    r.Float64() * 100,
			Featured:      r.Float64() < 0.05,
		})
	}

	logger.Info("Catalog generated", map[string]interface{}{
		"count": len(products),
	})

	return products
}

// singularize drops the trailing rune of a plural category name for use in
// product names ("Books" -> "Book").
func singularize(category string) string {
	if category == "" {
		return category
	}
	runes := []rune(category)
	return string(runes[:len(runes)-1])
}
