package category_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	Init(services.NewCatalogService(config.CatalogConfig{
		BaseURL:  server.URL,
		CacheTTL: time.Hour,
	}, storage.NewMemoryStore()))

	r := gin.New()
	r.GET("/categories", GetCategories)
	return r
}

func getCategories(t *testing.T, r *gin.Engine) (int, []string) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	r.ServeHTTP(w, req)

	var res struct {
		Message string   `json:"message"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return w.Code, res.Data
}

func TestGetCategoriesFromCatalog(t *testing.T) {
	r := setupCategoryRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]models.Category{
			{Slug: "beauty", Name: "Beauty"},
			{Slug: "furniture", Name: "Furniture"},
		})
	})

	code, categories := getCategories(t, r)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"beauty", "furniture"}, categories)
}

// When the catalog is unreachable the handler substitutes the fixed
// fallback list instead of returning an empty body.
func TestGetCategoriesFallbackWhenCatalogDown(t *testing.T) {
	r := setupCategoryRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	code, categories := getCategories(t, r)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, fallbackCategories, categories)
	assert.Len(t, categories, 8)
}
