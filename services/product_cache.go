package services

import (
	"bnc-store/config"
	"bnc-store/models"
	"context"
	"encoding/json"
	"time"
)

const productCacheTTL = 5 * time.Minute

// ProductCache is a best-effort read cache over redis. Every method is
// a no-op when redis is unavailable, so the store runs fine without it.
type ProductCache struct{}

func NewProductCache() *ProductCache {
	return &ProductCache{}
}

func (c *ProductCache) Get(ctx context.Context, key string) ([]models.Product, bool) {
	if config.RedisClient == nil {
		return nil, false
	}

	cached, err := config.RedisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) Set(ctx context.Context, key string, products []models.Product) {
	if config.RedisClient == nil {
		return
	}

	jsonData, err := json.Marshal(products)
	if err != nil {
		return
	}
	config.RedisClient.Set(ctx, key, string(jsonData), productCacheTTL)
}

// Invalidate drops every cached product list after a catalog write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}

	iter := config.RedisClient.Scan(ctx, 0, "product_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}
