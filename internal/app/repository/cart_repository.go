package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/pkg/kv"
	"github.com/minjae-kim/storefront-backend/pkg/logger"
)

const storageTimeout = 3 * time.Second

type CartRepository interface {
	// Load restores the persisted item list. Malformed or missing data
	// yields an empty list, never an error.
	Load() []model.CartItem
	Save(items []model.CartItem) error
}

type cartRepository struct {
	store kv.Store
	key   string
}

func NewCartRepository(store kv.Store, key string) CartRepository {
	return &cartRepository{store: store, key: key}
}

func (r *cartRepository) Load() []model.CartItem {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	raw, ok, err := r.store.Load(ctx, r.key)
	if err != nil {
		logger.Warn("Failed to load persisted cart, starting empty", map[string]interface{}{
			"key":   r.key,
			"error": err.Error(),
		})
		return []model.CartItem{}
	}
	if !ok {
		return []model.CartItem{}
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("Discarding malformed persisted cart", map[string]interface{}{
			"key":   r.key,
			"error": err.Error(),
		})
		return []model.CartItem{}
	}

	valid := items[:0]
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			logger.Warn("Dropping invalid persisted cart entry", map[string]interface{}{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			})
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

func (r *cartRepository) Save(items []model.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	return r.store.Save(ctx, r.key, string(raw))
}
