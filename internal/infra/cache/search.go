package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/config"
	"webshopper/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps recent retailer search results in Redis so repeated
// lookups for the same term do not burn API quota. Entries are best effort:
// a cache failure never fails the search.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, cfg config.RedisConfig) *SearchCache {
	return &SearchCache{client: client, ttl: cfg.SearchTTL}
}

func productKey(locationID, term string) string {
	return fmt.Sprintf("search:products:%s:%s", locationID, term)
}

func locationKey(zipcode string) string {
	return fmt.Sprintf("search:locations:%s", zipcode)
}

func (c *SearchCache) GetProducts(ctx context.Context, locationID, term string) ([]kroger.CatalogProduct, bool) {
	var products []kroger.CatalogProduct
	if !c.get(ctx, productKey(locationID, term), &products) {
		return nil, false
	}
	return products, true
}

func (c *SearchCache) SetProducts(ctx context.Context, locationID, term string, products []kroger.CatalogProduct) {
	c.set(ctx, productKey(locationID, term), products)
}

func (c *SearchCache) GetLocations(ctx context.Context, zipcode string) ([]kroger.Location, bool) {
	var locations []kroger.Location
	if !c.get(ctx, locationKey(zipcode), &locations) {
		return nil, false
	}
	return locations, true
}

func (c *SearchCache) SetLocations(ctx context.Context, zipcode string, locations []kroger.Location) {
	c.set(ctx, locationKey(zipcode), locations)
}

func (c *SearchCache) get(ctx context.Context, key string, out any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupt entry; drop it and fall through to the API.
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *SearchCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Connect opens and pings a Redis client.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
