package model

// Categories is the fixed category vocabulary. Generation assigns categories
// by index, so a full catalog is balanced across all of them.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Beauty & Personal Care",
	"Automotive",
	"Toys & Games",
	"Health & Wellness",
	"Office Products",
}

// Brands is the fixed brand vocabulary.
var Brands = []string{
	"TechPro",
	"StyleLine",
	"HomeMax",
	"SportFit",
	"ReadWell",
	"GlowUp",
	"AutoFix",
	"PlayTime",
	"WellLife",
	"WorkEase",
}

// Tags is the fixed tag vocabulary.
var Tags = []string{
	"bestseller",
	"new-arrival",
	"trending",
	"on-sale",
	"eco-friendly",
	"premium",
	"limited-edition",
}

const TagOnSale = "on-sale"

// Product is a catalog record. Products are immutable once generated; the
// catalog never mutates or invalidates them for the lifetime of the process.
// OriginalPrice is set iff the product is discounted, in which case it is
// strictly greater than Price and the "on-sale" tag is present.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	ImageURL      string   `json:"image_url"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	InStock       bool     `json:"in_stock"`
	Tags          []string `json:"tags"`
	Popularity    float64  `json:"popularity"`
	Featured      bool     `json:"featured,omitempty"`
}

// HasTag reports whether the product carries the given tag.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ValidCategory reports whether name is part of the category vocabulary.
func ValidCategory(name string) bool {
	return contains(Categories, name)
}

// ValidBrand reports whether name is part of the brand vocabulary.
func ValidBrand(name string) bool {
	return contains(Brands, name)
}

// ValidTag reports whether name is part of the tag vocabulary.
func ValidTag(name string) bool {
	return contains(Tags, name)
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
