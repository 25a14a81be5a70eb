package product_cache

import (
	"testing"
	"time"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Essence Mascara", Price: 9.99, Stock: 5},
	}
}

func TestFreshWithinTTL(t *testing.T) {
	c := New(storage.NewMemoryStore(), time.Hour)
	c.Set(snapshot())

	products, ok := c.Fresh()
	require.True(t, ok)
	assert.Equal(t, snapshot(), products)
}

func TestFreshExpiresAfterTTL(t *testing.T) {
	c := New(storage.NewMemoryStore(), time.Hour)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set(snapshot())

	c.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, ok := c.Fresh()
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(time.Hour) }
	_, ok = c.Fresh()
	assert.False(t, ok)
}

func TestAnyIgnoresAge(t *testing.T) {
	c := New(storage.NewMemoryStore(), time.Hour)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set(snapshot())

	c.now = func() time.Time { return base.Add(48 * time.Hour) }
	products, ok := c.Any()
	require.True(t, ok)
	assert.Equal(t, snapshot(), products)
}

func TestEmptyStore(t *testing.T) {
	c := New(storage.NewMemoryStore(), time.Hour)

	_, ok := c.Fresh()
	assert.False(t, ok)
	_, ok = c.Any()
	assert.False(t, ok)
}

func TestCorruptSnapshotDropped(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ProductsKey, "{not json"))
	require.NoError(t, store.Set(TimestampKey, "not-a-number"))

	c := New(store, time.Hour)
	_, ok := c.Fresh()
	assert.False(t, ok)
	_, ok = c.Any()
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c := New(storage.NewMemoryStore(), time.Hour)
	c.Set(snapshot())
	c.Clear()

	_, ok := c.Any()
	assert.False(t, ok)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	c := New(storage.NewMemoryStore(), 0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
