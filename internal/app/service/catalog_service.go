package service

import (
	"errors"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/internal/app/repository"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// FilterMetadata describes the available filter dimensions for the rendering
// layer: the fixed vocabularies, the price domain, and availability counts.
type FilterMetadata struct {
	Categories   []string           `json:"categories"`
	Brands       []string           `json:"brands"`
	Tags         []string           `json:"tags"`
	PriceRange   model.PriceRange   `json:"price_range"`
	Availability AvailabilityCounts `json:"availability"`
}

type AvailabilityCounts struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

type CatalogService interface {
	GetProductByID(id string) (*model.Product, error)
	GetFeaturedProducts() []model.Product
	GetProductsByCategory(category string) []model.Product
	GetProductsByBrand(brand string) []model.Product
	GetStats() repository.CatalogStats
	GetFilterMetadata() FilterMetadata
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) GetProductByID(id string) (*model.Product, error) {
	product, ok := s.catalogRepo.FindByID(id)
	if !ok {
		logger.Warn("Product not found", map[string]interface{}{
			"product_id": id,
		})
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) GetFeaturedProducts() []model.Product {
	return s.catalogRepo.FindFeatured()
}

func (s *catalogService) GetProductsByCategory(category string) []model.Product {
	return s.catalogRepo.FindByCategory(category)
}

func (s *catalogService) GetProductsByBrand(brand string) []model.Product {
	return s.catalogRepo.FindByBrand(brand)
}

func (s *catalogService) GetStats() repository.CatalogStats {
	return s.catalogRepo.Stats()
}

func (s *catalogService) GetFilterMetadata() FilterMetadata {
	stats := s.catalogRepo.Stats()
	return FilterMetadata{
		Categories: model.Categories,
		Brands:     model.Brands,
		Tags:       model.Tags,
		PriceRange: model.PriceRange{Min: model.DefaultPriceMin, Max: model.DefaultPriceMax},
		Availability: AvailabilityCounts{
			InStock:    stats.InStock,
			OutOfStock: stats.Total - stats.InStock,
		},
	}
}
