package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minjae-kim/storefront-backend/config"
	"github.com/minjae-kim/storefront-backend/internal/app/controller"
	"github.com/minjae-kim/storefront-backend/internal/app/repository"
	"github.com/minjae-kim/storefront-backend/internal/app/service"
	"github.com/minjae-kim/storefront-backend/internal/catalog"
	"github.com/minjae-kim/storefront-backend/internal/router"
	"github.com/minjae-kim/storefront-backend/internal/scheduler"
	"github.com/minjae-kim/storefront-backend/pkg/kv"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Storefront Backend Server", map[string]interface{}{
		"environment":  cfg.Server.Environment,
		"port":         cfg.Server.Port,
		"log_level":    logLevel,
		"catalog_size": cfg.Catalog.Size,
	})

	// Generate the immutable in-memory catalog
	products := catalog.Generate(cfg.Catalog.Size)
	catalogRepo := repository.NewCatalogRepository(products)

	// Cart persistence: Redis when reachable, in-memory otherwise. The cart
	// then simply does not survive restarts; nothing else degrades.
	var store kv.Store
	redisStore, err := kv.NewRedisStore(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, cart persistence is in-memory only", map[string]interface{}{
			"error": err.Error(),
		})
		store = kv.NewMemoryStore()
	} else {
		store = redisStore
		defer func() {
			if err := redisStore.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
	}
	cartRepo := repository.NewCartRepository(store, cfg.Cart.StorageKey)

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo)
	queryService := service.NewQueryService(catalogRepo, cfg.Query.SearchDebounce, cfg.Query.DisplayLimit)
	cartService := service.NewCartService(cartRepo, catalogRepo)
	exportService := service.NewExportService()

	// Initialize controllers
	productController := controller.NewProductController(catalogService, queryService, exportService)
	queryController := controller.NewQueryController(queryService)
	cartController := controller.NewCartController(cartService)

	// Start stats scheduler
	statsScheduler := scheduler.NewStatsScheduler(catalogService, queryService)
	if err := statsScheduler.Start(); err != nil {
		logger.Warn("Failed to start stats scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer statsScheduler.Stop()

	// Setup router
	r := router.NewRouter(productController, queryController, cartController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
