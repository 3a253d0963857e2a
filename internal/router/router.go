package router

import (
	"github.com/gin-gonic/gin"
	"github.com/minjae-kim/storefront-backend/config"
	"github.com/minjae-kim/storefront-backend/internal/app/controller"
	"github.com/minjae-kim/storefront-backend/internal/middleware"
)

type Router struct {
	productController *controller.ProductController
	queryController   *controller.QueryController
	cartController    *controller.CartController
	config            *config.Config
}

func NewRouter(
	productController *controller.ProductController,
	queryController *controller.QueryController,
	cartController *controller.CartController,
	cfg *config.Config,
) *Router {
	return &Router{
		productController: productController,
		queryController:   queryController,
		cartController:    cartController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Storefront API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/featured", r.productController.GetFeaturedProducts)
			products.GET("/stats", r.productController.GetStats)
			products.GET("/filters", r.productController.GetFilterMetadata)
			products.GET("/export", r.productController.ExportProducts)
			products.GET("/:id", r.productController.GetProductByID)
		}

		query := v1.Group("/query")
		{
			query.PUT("/filters", r.queryController.UpdateFilters)
			query.PUT("/sort", r.queryController.SetSort)
			query.POST("/reset", r.queryController.ResetFilters)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.PUT("/:product_id", r.cartController.UpdateCartItem)
			cart.DELETE("/:product_id", r.cartController.RemoveFromCart)
			cart.DELETE("", r.cartController.ClearCart)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
