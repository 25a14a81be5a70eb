package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	product_cache "github.com/Slooze-Commerce/slooze-inventory-backend/cache"
	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Essence Mascara", Price: 9.99, Stock: 5, Category: "beauty"},
		{ID: 2, Title: "Powder Canister", Price: 14.99, Stock: 0, Category: "beauty"},
	}
}

// newCatalogServer serves /products, /products/search and /products/categories
// like the remote catalog API and counts the requests it handles.
func newCatalogServer(t *testing.T, products []models.Product) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(models.CatalogPage{
			Products: products,
			Total:    len(products),
			Limit:    100,
		})
	})
	mux.HandleFunc("/products/search", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q := r.URL.Query().Get("q")
		var hits []models.Product
		for _, p := range products {
			if q != "" && p.Title == "Essence Mascara" && q == "mascara" {
				hits = append(hits, p)
			}
		}
		json.NewEncoder(w).Encode(models.CatalogPage{Products: hits, Total: len(hits)})
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode([]models.Category{
			{Slug: "beauty", Name: "Beauty"},
			{Slug: "furniture", Name: "Furniture"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestCatalogService(baseURL string, store storage.Store) *CatalogService {
	return NewCatalogService(config.CatalogConfig{
		BaseURL:  baseURL,
		CacheTTL: time.Hour,
	}, store)
}

func TestFetchProductsCachesFirstResponse(t *testing.T) {
	server, calls := newCatalogServer(t, catalogFixture())
	svc := newTestCatalogService(server.URL, storage.NewMemoryStore())

	first, err := svc.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, int64(1), calls.Load())

	// Second call inside the TTL is served from the cache.
	second, err := svc.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchProductsServesStaleCacheWhenAPIDown(t *testing.T) {
	store := storage.NewMemoryStore()

	// Seed an expired snapshot directly, the way a long-dormant install
	// would hold one.
	raw, err := json.Marshal(catalogFixture())
	require.NoError(t, err)
	require.NoError(t, store.Set(product_cache.ProductsKey, string(raw)))
	staleMillis := time.Now().Add(-2 * time.Hour).UnixMilli()
	require.NoError(t, store.Set(product_cache.TimestampKey, strconv.FormatInt(staleMillis, 10)))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	svc := newTestCatalogService(server.URL, store)
	products, err := svc.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Essence Mascara", products[0].Title)
}

func TestFetchProductsFailsWithoutAnyCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	svc := newTestCatalogService(server.URL, storage.NewMemoryStore())
	_, err := svc.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchCategoriesReturnsSlugs(t *testing.T) {
	server, _ := newCatalogServer(t, catalogFixture())
	svc := newTestCatalogService(server.URL, storage.NewMemoryStore())

	slugs := svc.FetchCategories(context.Background())
	assert.Equal(t, []string{"beauty", "furniture"}, slugs)
}

func TestFetchCategoriesEmptyOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	svc := newTestCatalogService(server.URL, storage.NewMemoryStore())
	assert.Empty(t, svc.FetchCategories(context.Background()))
}

func TestSearchProducts(t *testing.T) {
	server, _ := newCatalogServer(t, catalogFixture())
	svc := newTestCatalogService(server.URL, storage.NewMemoryStore())

	hits := svc.SearchProducts(context.Background(), "mascara")
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].ID)

	assert.Empty(t, svc.SearchProducts(context.Background(), "no-such-thing"))
}

func TestClearCacheForcesRefetch(t *testing.T) {
	server, calls := newCatalogServer(t, catalogFixture())
	svc := newTestCatalogService(server.URL, storage.NewMemoryStore())

	_, err := svc.FetchProducts(context.Background())
	require.NoError(t, err)

	svc.ClearCache()

	_, err = svc.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}
