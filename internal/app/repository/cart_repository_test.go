package repository

import (
	"context"
	"testing"

	"github.com/minjae-kim/storefront-backend/internal/app/model"
	"github.com/minjae-kim/storefront-backend/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCartKey = "storefront:cart"

func TestCartRepository_RoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewCartRepository(store, testCartKey)

	items := []model.CartItem{
		{ProductID: "prod-1", Quantity: 2},
		{ProductID: "prod-7", Quantity: 1},
	}
	require.NoError(t, repo.Save(items))

	restored := repo.Load()
	assert.Equal(t, items, restored)
}

func TestCartRepository_LoadMissingKey(t *testing.T) {
	repo := NewCartRepository(kv.NewMemoryStore(), testCartKey)
	assert.Empty(t, repo.Load())
}

func TestCartRepository_LoadMalformedData(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), testCartKey, "{not json"))

	repo := NewCartRepository(store, testCartKey)
	assert.Empty(t, repo.Load())
}

func TestCartRepository_LoadDropsInvalidEntries(t *testing.T) {
	store := kv.NewMemoryStore()
	raw := `[{"product_id":"prod-1","quantity":2},{"product_id":"","quantity":3},{"product_id":"prod-2","quantity":0}]`
	require.NoError(t, store.Save(context.Background(), testCartKey, raw))

	repo := NewCartRepository(store, testCartKey)
	restored := repo.Load()
	require.Len(t, restored, 1)
	assert.Equal(t, model.CartItem{ProductID: "prod-1", Quantity: 2}, restored[0])
}
