package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	product_cache "github.com/Slooze-Commerce/slooze-inventory-backend/cache"
	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
)

// CatalogService talks to the remote catalog API and shields callers from
// its availability through the persisted product snapshot cache.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
	cache      *product_cache.Cache
}

func NewCatalogService(cfg config.CatalogConfig, store storage.Store) *CatalogService {
	return &CatalogService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		// No client timeout: the caller's context bounds each call.
		httpClient: &http.Client{},
		cache:      product_cache.New(store, cfg.CacheTTL),
	}
}

// FetchProducts returns the remote product collection, preferring a fresh
// cache, else the network, else any cached snapshot regardless of age. The
// error only surfaces when the fetch fails and no cache of any age exists.
func (s *CatalogService) FetchProducts(ctx context.Context) ([]models.Product, error) {
	// Step 1: fresh cache wins, no network call
	if cached, ok := s.cache.Fresh(); ok {
		return cached, nil
	}

	// Step 2: hit the catalog API
	page, err := s.fetchPage(ctx, s.baseURL+"/products?limit=100")
	if err != nil {
		// Step 3: stale-but-available fallback
		if cached, ok := s.cache.Any(); ok {
			log.Printf("[catalog] fetch failed, serving stale cache: %v", err)
			return cached, nil
		}
		return nil, err
	}

	s.cache.Set(page.Products)
	return page.Products, nil
}

// FetchCategories returns the remote category slugs. Any failure yields an
// empty list; callers substitute their own fallback set. Categories are
// never cached.
func (s *CatalogService) FetchCategories(ctx context.Context) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/products/categories", nil)
	if err != nil {
		return []string{}
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("[catalog] category fetch failed: %v", err)
		return []string{}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Printf("[catalog] category fetch returned status %d", res.StatusCode)
		return []string{}
	}

	var categories []models.Category
	if err := json.NewDecoder(res.Body).Decode(&categories); err != nil {
		log.Printf("[catalog] category decode failed: %v", err)
		return []string{}
	}

	slugs := make([]string, 0, len(categories))
	for _, cat := range categories {
		slugs = append(slugs, cat.Slug)
	}
	return slugs
}

// SearchProducts runs a server-side search against the catalog API. Results
// are uncached; failures collapse to an empty list.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) []models.Product {
	endpoint := s.baseURL + "/products/search?q=" + url.QueryEscape(query)
	page, err := s.fetchPage(ctx, endpoint)
	if err != nil {
		log.Printf("[catalog] search failed: %v", err)
		return []models.Product{}
	}
	return page.Products
}

// ClearCache drops the persisted product snapshot.
func (s *CatalogService) ClearCache() {
	s.cache.Clear()
}

func (s *CatalogService) fetchPage(ctx context.Context, endpoint string) (*models.CatalogPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API returned status %d", res.StatusCode)
	}

	var page models.CatalogPage
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return &page, nil
}
