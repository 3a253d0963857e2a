package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minjae-kim/storefront-backend/internal/app/service"
	apperrors "github.com/minjae-kim/storefront-backend/internal/errors"
	"github.com/minjae-kim/storefront-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" binding:"omitempty,gt=0"`
}

type UpdateCartRequest struct {
	// Quantity is a pointer so an explicit zero (remove) binds.
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the cart with derived totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cart := ctrl.cartService.GetCart()

	log.Info("Cart fetched successfully", map[string]interface{}{
		"count":      len(cart.Items),
		"item_count": cart.ItemCount,
		"total":      cart.Total,
	})

	c.JSON(http.StatusOK, cart)
}

// AddToCart adds a product to the cart, incrementing quantity if present
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := ctrl.cartService.AddItem(req.ProductID, quantity); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for cart", map[string]interface{}{
				"product_id": req.ProductID,
			})
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to add to cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		apperrors.Internal(c, "Failed to add to cart")
		return
	}

	log.Info("Cart item added", map[string]interface{}{
		"product_id": req.ProductID,
		"quantity":   quantity,
	})

	c.JSON(http.StatusOK, ctrl.cartService.GetCart())
}

// UpdateCartItem sets the quantity of a cart entry; zero removes it
// PUT /api/v1/cart/:product_id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("product_id")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart update request", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	ctrl.cartService.UpdateQuantity(productID, *req.Quantity)

	log.Info("Cart item updated", map[string]interface{}{
		"product_id": productID,
		"quantity":   *req.Quantity,
	})

	c.JSON(http.StatusOK, ctrl.cartService.GetCart())
}

// RemoveFromCart deletes a cart entry; removing an absent entry is a no-op
// DELETE /api/v1/cart/:product_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("product_id")
	ctrl.cartService.RemoveItem(productID)

	log.Info("Cart item removed", map[string]interface{}{
		"product_id": productID,
	})

	c.JSON(http.StatusOK, ctrl.cartService.GetCart())
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	ctrl.cartService.ClearCart()

	log.Info("Cart cleared", nil)

	c.JSON(http.StatusOK, ctrl.cartService.GetCart())
}
