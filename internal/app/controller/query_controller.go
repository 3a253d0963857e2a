package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minjae-kim/storefront-backend/internal/app/service"
	apperrors "github.com/minjae-kim/storefront-backend/internal/errors"
	"github.com/minjae-kim/storefront-backend/internal/middleware"
)

// QueryController exposes the browse session state: filter updates, sort
// selection, and reset.
type QueryController struct {
	queryService service.QueryService
}

func NewQueryController(queryService service.QueryService) *QueryController {
	return &QueryController{
		queryService: queryService,
	}
}

// UpdateFiltersRequest carries partial filter updates; only fields that are
// present are applied. Search edits take effect after the debounce window,
// every other field commits immediately.
type UpdateFiltersRequest struct {
	SearchTerm  *string     `json:"search_term"`
	Category    *string     `json:"category"`
	Brand       *string     `json:"brand"`
	PriceRange  *[2]float64 `json:"price_range"`
	MinRating   *float64    `json:"min_rating"`
	InStockOnly *bool       `json:"in_stock_only"`
	Tags        *[]string   `json:"tags"`
	ToggleTag   *string     `json:"toggle_tag"`
}

type SetSortRequest struct {
	Sort string `json:"sort" binding:"required"`
}

// UpdateFilters applies the provided filter fields
// PUT /api/v1/query/filters
func (ctrl *QueryController) UpdateFilters(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid filter update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := ctrl.applyFilters(req); err != nil {
		log.Warn("Rejected filter update", map[string]interface{}{
			"error": err.Error(),
		})
		switch {
		case errors.Is(err, service.ErrInvalidPriceRange):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "Invalid price range")
		case errors.Is(err, service.ErrUnknownCategory),
			errors.Is(err, service.ErrUnknownBrand),
			errors.Is(err, service.ErrUnknownTag):
			apperrors.BadRequest(c, apperrors.ValidationUnknownValue, err.Error())
		default:
			apperrors.Internal(c, "Failed to update filters")
		}
		return
	}

	c.JSON(http.StatusOK, ctrl.queryService.Result())
}

func (ctrl *QueryController) applyFilters(req UpdateFiltersRequest) error {
	if req.SearchTerm != nil {
		ctrl.queryService.SetSearchTerm(*req.SearchTerm)
	}
	if req.Category != nil {
		if err := ctrl.queryService.SetCategory(*req.Category); err != nil {
			return err
		}
	}
	if req.Brand != nil {
		if err := ctrl.queryService.SetBrand(*req.Brand); err != nil {
			return err
		}
	}
	if req.PriceRange != nil {
		if err := ctrl.queryService.SetPriceRange(req.PriceRange[0], req.PriceRange[1]); err != nil {
			return err
		}
	}
	if req.MinRating != nil {
		ctrl.queryService.SetMinRating(*req.MinRating)
	}
	if req.InStockOnly != nil {
		ctrl.queryService.SetInStockOnly(*req.InStockOnly)
	}
	if req.Tags != nil {
		if err := ctrl.queryService.SetTags(*req.Tags); err != nil {
			return err
		}
	}
	if req.ToggleTag != nil {
		if err := ctrl.queryService.ToggleTag(*req.ToggleTag); err != nil {
			return err
		}
	}
	return nil
}

// SetSort selects the sort key; unknown keys fall back to popularity
// PUT /api/v1/query/sort
func (ctrl *QueryController) SetSort(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid sort request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	key := ctrl.queryService.SetSortKey(req.Sort)

	log.Info("Sort key set", map[string]interface{}{
		"requested": req.Sort,
		"applied":   key,
	})

	c.JSON(http.StatusOK, ctrl.queryService.Result())
}

// ResetFilters restores the default filter and sort state synchronously
// POST /api/v1/query/reset
func (ctrl *QueryController) ResetFilters(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	ctrl.queryService.Reset()

	log.Info("Filters reset", nil)

	c.JSON(http.StatusOK, ctrl.queryService.Result())
}
