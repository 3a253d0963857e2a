package scheduler

import (
	"github.com/minjae-kim/storefront-backend/internal/app/service"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// StatsScheduler periodically logs catalog aggregates and query pipeline
// counters so recompute behavior is observable in production logs.
type StatsScheduler struct {
	cron           *cron.Cron
	catalogService service.CatalogService
	queryService   service.QueryService
}

func NewStatsScheduler(catalogService service.CatalogService, queryService service.QueryService) *StatsScheduler {
	return &StatsScheduler{
		cron:           cron.New(),
		catalogService: catalogService,
		queryService:   queryService,
	}
}

// Start schedules the stats snapshot every 5 minutes.
func (s *StatsScheduler) Start() error {
	_, err := s.cron.AddFunc("@every 5m", func() {
		stats := s.catalogService.GetStats()
		metrics := s.queryService.Metrics()

		logger.Info("Catalog stats snapshot", map[string]interface{}{
			"total":           stats.Total,
			"in_stock":        stats.InStock,
			"on_sale":         stats.OnSale,
			"avg_price":       stats.AvgPrice,
			"avg_rating":      stats.AvgRating,
			"recomputes":      metrics.Recomputes,
			"cache_hits":      metrics.CacheHits,
			"last_compute_ms": metrics.LastDuration.Milliseconds(),
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for stats snapshot", err)
		return err
	}

	s.cron.Start()
	logger.Info("Stats scheduler started successfully (every 5 minutes)", nil)

	return nil
}

// Stop stops the scheduler.
func (s *StatsScheduler) Stop() {
	logger.Info("Stopping stats scheduler...", nil)
	s.cron.Stop()
}
