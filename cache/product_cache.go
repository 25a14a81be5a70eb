package product_cache

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
)

const DefaultTTL = time.Hour

// Storage keys. The snapshot and its fetch timestamp are separate values so
// a freshness check never has to decode the product array.
const (
	ProductsKey  = "slooze_api_products"
	TimestampKey = "slooze_api_cache_timestamp" // epoch millis as text
)

// ── Remote product snapshot cache ────────────────────────────────────────────
// Persists the last successful catalog fetch. A snapshot younger than the
// TTL is served without a network call; an older one is kept around as the
// fallback when a refresh fails.

type Cache struct {
	store storage.Store
	ttl   time.Duration

	// now is swappable so tests can age the snapshot.
	now func() time.Time
}

func New(store storage.Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, now: time.Now}
}

// Fresh returns the snapshot only while its age is below the TTL.
func (c *Cache) Fresh() ([]models.Product, bool) {
	raw, err := c.store.Get(TimestampKey)
	if err != nil {
		return nil, false
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}

	age := c.now().Sub(time.UnixMilli(millis))
	if age >= c.ttl {
		return nil, false
	}
	return c.decode()
}

// Any returns the snapshot regardless of age (stale-but-available policy).
func (c *Cache) Any() ([]models.Product, bool) {
	return c.decode()
}

// Set persists a new snapshot stamped with the current time. Write failures
// are logged and swallowed: caching is best effort.
func (c *Cache) Set(products []models.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		log.Printf("[product-cache] failed to encode snapshot: %v", err)
		return
	}
	if err := c.store.Set(ProductsKey, string(raw)); err != nil {
		log.Printf("[product-cache] failed to write snapshot: %v", err)
		return
	}
	if err := c.store.Set(TimestampKey, strconv.FormatInt(c.now().UnixMilli(), 10)); err != nil {
		log.Printf("[product-cache] failed to write timestamp: %v", err)
	}
}

// Clear drops the snapshot and its timestamp.
func (c *Cache) Clear() {
	if err := c.store.Remove(ProductsKey); err != nil {
		log.Printf("[product-cache] failed to clear snapshot: %v", err)
	}
	if err := c.store.Remove(TimestampKey); err != nil {
		log.Printf("[product-cache] failed to clear timestamp: %v", err)
	}
}

func (c *Cache) decode() ([]models.Product, bool) {
	raw, err := c.store.Get(ProductsKey)
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Printf("[product-cache] corrupt snapshot dropped: %v", err)
		return nil, false
	}
	return products, true
}
