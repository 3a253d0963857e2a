package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minjae-kim/storefront-backend/internal/app/service"
	apperrors "github.com/minjae-kim/storefront-backend/internal/errors"
	"github.com/minjae-kim/storefront-backend/internal/middleware"
)

type ProductController struct {
	catalogService service.CatalogService
	queryService   service.QueryService
	exportService  service.ExportService
}

func NewProductController(
	catalogService service.CatalogService,
	queryService service.QueryService,
	exportService service.ExportService,
) *ProductController {
	return &ProductController{
		catalogService: catalogService,
		queryService:   queryService,
		exportService:  exportService,
	}
}

// GetProducts returns the current visible product sequence with counts and
// the active filter/sort state
// GET /api/v1/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	result := ctrl.queryService.Result()

	log.Info("Products listed", map[string]interface{}{
		"display_count":  result.DisplayCount,
		"total_filtered": result.TotalFiltered,
		"total_catalog":  result.TotalCatalog,
	})

	c.JSON(http.StatusOK, result)
}

// GetProductByID returns a product by ID
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")
	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.Internal(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// GetFeaturedProducts returns featured products
// GET /api/v1/products/featured
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products := ctrl.catalogService.GetFeaturedProducts()

	log.Info("Featured products fetched", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetStats returns catalog-wide aggregates
// GET /api/v1/products/stats
func (ctrl *ProductController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats": ctrl.catalogService.GetStats(),
	})
}

// GetFilterMetadata returns the available filter dimensions
// GET /api/v1/products/filters
func (ctrl *ProductController) GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.catalogService.GetFilterMetadata())
}

// ExportProducts streams the current filtered sequence as an xlsx workbook
// GET /api/v1/products/export
func (ctrl *ProductController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products := ctrl.queryService.FilteredProducts()

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := ctrl.exportService.WriteProducts(c.Writer, products); err != nil {
		log.Error("Failed to export products", err, map[string]interface{}{
			"count": len(products),
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.InternalExportError, "Failed to export products")
		return
	}

	log.Info("Products exported", map[string]interface{}{
		"count":    len(products),
		"filename": filename,
	})
}
