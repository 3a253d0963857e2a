package service

import (
	"sync"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/internal/app/repository"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
)

// CartService is the cart ledger: an insertion-ordered mapping from product
// id to quantity with derived totals. Every mutation is persisted
// fire-and-forget; a failed write is logged and the in-memory state stays
// authoritative.
type CartService interface {
	GetCart() model.Cart
	AddItem(productID string, quantity int) error
	RemoveItem(productID string)
	UpdateQuantity(productID string, quantity int)
	ClearCart()
}

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository

	mu    sync.Mutex
	items []model.CartItem

	version       uint64
	cached        model.Cart
	cachedVersion uint64
	cachedValid   bool
}

// NewCartService restores the persisted ledger. Entries whose product id no
// longer resolves against the catalog are dropped.
func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) CartService {
	restored := cartRepo.Load()
	items := make([]model.CartItem, 0, len(restored))
	for _, item := range restored {
		if _, ok := catalogRepo.FindByID(item.ProductID); !ok {
			logger.Warn("Dropping cart entry for unknown product", map[string]interface{}{
				"product_id": item.ProductID,
			})
			continue
		}
		items = append(items, item)
	}

	logger.Info("Cart restored", map[string]interface{}{
		"count": len(items),
	})

	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		items:       items,
	}
}

func (s *cartService) GetCart() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedValid && s.cachedVersion == s.version {
		return s.cached
	}

	cart := model.Cart{Items: make([]model.CartLine, 0, len(s.items))}
	for _, item := range s.items {
		product, ok := s.catalogRepo.FindByID(item.ProductID)
		if !ok {
			continue
		}
		cart.Items = append(cart.Items, model.CartLine{
			Product:  *product,
			Quantity: item.Quantity,
		})
		cart.Total += product.Price * float64(item.Quantity)
		cart.ItemCount += item.Quantity
	}

	s.cached = cart
	s.cachedVersion = s.version
	s.cachedValid = true
	return cart
}

// AddItem increments the quantity of an existing entry or appends a new one
// at the end, preserving insertion order.
func (s *cartService) AddItem(productID string, quantity int) error {
	if _, ok := s.catalogRepo.FindByID(productID); !ok {
		logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
			"product_id": productID,
		})
		return ErrProductNotFound
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			s.mutatedLocked()
			return nil
		}
	}

	s.items = append(s.items, model.CartItem{ProductID: productID, Quantity: quantity})
	s.mutatedLocked()
	return nil
}

func (s *cartService) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity sets the quantity of an existing entry. A quantity <= 0
// removes the entry. An absent product id is a no-op, not an insert; adding
// is AddItem's job.
func (s *cartService) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.mutatedLocked()
			return
		}
	}

	logger.Debug("Quantity update for absent cart entry ignored", map[string]interface{}{
		"product_id": productID,
	})
}

func (s *cartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return
	}
	s.items = s.items[:0]
	s.mutatedLocked()
}

func (s *cartService) removeLocked(productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.mutatedLocked()
			return
		}
	}
}

// mutatedLocked bumps the totals version and persists the ledger. Write
// failures never fail the mutation.
func (s *cartService) mutatedLocked() {
	s.version++
	if err := s.cartRepo.Save(s.items); err != nil {
		logger.Error("Failed to persist cart, in-memory state remains authoritative", err, map[string]interface{}{
			"count": len(s.items),
		})
	}
}
