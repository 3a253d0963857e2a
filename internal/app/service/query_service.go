package service

import (
	"errors"
	"sync"
	"time"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/internal/app/repository"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownBrand      = errors.New("unknown brand")
	ErrUnknownTag        = errors.New("unknown tag")
	ErrInvalidPriceRange = errors.New("invalid price range")
)

const maxRating = 5

// QueryResult is what the rendering layer receives: the capped display
// slice, the counts needed to page or summarize, and the current state.
type QueryResult struct {
	Products         []model.Product  `json:"products"`
	DisplayCount     int              `json:"display_count"`
	TotalFiltered    int              `json:"total_filtered"`
	TotalCatalog     int              `json:"total_catalog"`
	HasMore          bool             `json:"has_more"`
	Filters          model.FilterSpec `json:"filters"`
	Sort             model.SortKey    `json:"sort"`
	HasActiveFilters bool             `json:"has_active_filters"`
}

// QueryMetrics counts pipeline work for observability.
type QueryMetrics struct {
	Recomputes   uint64        `json:"recomputes"`
	CacheHits    uint64        `json:"cache_hits"`
	LastDuration time.Duration `json:"last_duration"`
}

// QueryService keeps the visible product sequence consistent with the latest
// filter and sort state while bounding recomputation cost. Search edits are
// debounced: only the last edit within the quiet window is committed to the
// effective spec. The filtered+sorted sequence is memoized against a version
// stamp and recomputed only when the effective state actually changed.
type QueryService interface {
	SetSearchTerm(term string)
	SetCategory(category string) error
	SetBrand(brand string) error
	SetPriceRange(min, max float64) error
	SetMinRating(rating float64)
	SetInStockOnly(inStockOnly bool)
	SetTags(tags []string) error
	ToggleTag(tag string) error
	SetSortKey(raw string) model.SortKey
	Reset()
	Result() QueryResult
	// FilteredProducts returns the full computed sequence without the
	// display cap.
	FilteredProducts() []model.Product
	Metrics() QueryMetrics
}

type queryService struct {
	catalogRepo  repository.CatalogRepository
	debounce     time.Duration
	displayLimit int

	mu      sync.Mutex
	filters model.FilterSpec // raw state; SearchTerm may be ahead of effectiveSearch
	sortKey model.SortKey

	effectiveSearch string
	pendingTimer    *time.Timer
	searchGen       uint64 // invalidates in-flight debounce commits

	version       uint64 // bumped on every effective state change
	cached        []model.Product
	cachedVersion uint64
	cachedValid   bool

	recomputes   uint64
	cacheHits    uint64
	lastDuration time.Duration
}

func NewQueryService(catalogRepo repository.CatalogRepository, debounce time.Duration, displayLimit int) QueryService {
	return &queryService{
		catalogRepo:  catalogRepo,
		debounce:     debounce,
		displayLimit: displayLimit,
		filters:      model.DefaultFilterSpec(),
		sortKey:      model.SortPopularity,
	}
}

// SetSearchTerm records the raw term immediately but commits it to the
// effective spec only after the quiet window elapses with no further edits.
// Intermediate values are discarded, never partially applied.
func (s *queryService) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.SearchTerm = term
	s.searchGen++

	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
		s.pendingTimer = nil
	}

	if s.debounce <= 0 {
		s.commitSearchLocked(term)
		return
	}

	gen := s.searchGen
	s.pendingTimer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.searchGen {
			// A newer edit or a reset superseded this commit.
			return
		}
		s.pendingTimer = nil
		s.commitSearchLocked(term)
	})
}

func (s *queryService) commitSearchLocked(term string) {
	if s.effectiveSearch == term {
		return
	}
	s.effectiveSearch = term
	s.version++
	logger.Debug("Search term committed", map[string]interface{}{
		"search": term,
	})
}

func (s *queryService) SetCategory(category string) error {
	if category != model.FilterAll && !model.ValidCategory(category) {
		return ErrUnknownCategory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Category = category
	s.version++
	return nil
}

func (s *queryService) SetBrand(brand string) error {
	if brand != model.FilterAll && !model.ValidBrand(brand) {
		return ErrUnknownBrand
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Brand = brand
	s.version++
	return nil
}

// SetPriceRange clamps negative bounds to zero and rejects an inverted
// range. The predicate assumes well-formed specs, so malformed ranges must
// not get past this boundary.
func (s *queryService) SetPriceRange(min, max float64) error {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if min > max {
		return ErrInvalidPriceRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.PriceRange = model.PriceRange{Min: min, Max: max}
	s.version++
	return nil
}

func (s *queryService) SetMinRating(rating float64) {
	if rating < 0 {
		rating = 0
	}
	if rating > maxRating {
		rating = maxRating
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.MinRating = rating
	s.version++
}

func (s *queryService) SetInStockOnly(inStockOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.InStockOnly = inStockOnly
	s.version++
}

func (s *queryService) SetTags(tags []string) error {
	for _, tag := range tags {
		if !model.ValidTag(tag) {
			return ErrUnknownTag
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Tags = append([]string{}, tags...)
	s.version++
	return nil
}

func (s *queryService) ToggleTag(tag string) error {
	if !model.ValidTag(tag) {
		return ErrUnknownTag
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]string, 0, len(s.filters.Tags)+1)
	removed := false
	for _, t := range s.filters.Tags {
		if t == tag {
			removed = true
			continue
		}
		tags = append(tags, t)
	}
	if !removed {
		tags = append(tags, tag)
	}
	s.filters.Tags = tags
	s.version++
	return nil
}

// SetSortKey never fails: unknown keys fall back to the popularity default.
func (s *queryService) SetSortKey(raw string) model.SortKey {
	key := model.ParseSortKey(raw)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sortKey != key {
		s.sortKey = key
		s.version++
	}
	return key
}

// Reset restores defaults synchronously: any pending debounce commit is
// discarded rather than applied after the fact.
func (s *queryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchGen++
	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
		s.pendingTimer = nil
	}

	s.filters = model.DefaultFilterSpec()
	s.effectiveSearch = ""
	s.sortKey = model.SortPopularity
	s.version++

	logger.Info("Filters reset to defaults", nil)
}

// computeLocked returns the filtered+sorted sequence, recomputing only when
// the version stamp moved past the cached one.
func (s *queryService) computeLocked() []model.Product {
	if s.cachedValid && s.cachedVersion == s.version {
		s.cacheHits++
		return s.cached
	}

	spec := s.filters
	spec.SearchTerm = s.effectiveSearch

	start := time.Now()
	s.cached = s.catalogRepo.FindWithFilter(spec, s.sortKey)
	s.lastDuration = time.Since(start)
	s.cachedVersion = s.version
	s.cachedValid = true
	s.recomputes++

	logger.Debug("Query pipeline recomputed", map[string]interface{}{
		"matched":     len(s.cached),
		"duration_ms": s.lastDuration.Milliseconds(),
	})
	return s.cached
}

func (s *queryService) Result() QueryResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	computed := s.computeLocked()

	display := computed
	if len(display) > s.displayLimit {
		display = display[:s.displayLimit]
	}

	return QueryResult{
		Products:         display,
		DisplayCount:     len(display),
		TotalFiltered:    len(computed),
		TotalCatalog:     s.catalogRepo.Count(),
		HasMore:          len(computed) > s.displayLimit,
		Filters:          s.filters,
		Sort:             s.sortKey,
		HasActiveFilters: s.filters.Active(),
	}
}

func (s *queryService) FilteredProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeLocked()
}

func (s *queryService) Metrics() QueryMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return QueryMetrics{
		Recomputes:   s.recomputes,
		CacheHits:    s.cacheHits,
		LastDuration: s.lastDuration,
	}
}
