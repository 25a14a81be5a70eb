package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
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

// setupMutationRouter wires the handlers against a one-product remote
// catalog (id 1) and an empty custom collection.
func setupMutationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.CatalogPage{
			Products: []models.Product{
				{ID: 1, Title: "Essence Mascara", Price: 9.99, Stock: 5, Category: "beauty"},
			},
			Total: 1,
			Limit: 100,
		})
	}))
	t.Cleanup(server.Close)

	store := storage.NewMemoryStore()
	catalog := services.NewCatalogService(config.CatalogConfig{
		BaseURL:  server.URL,
		CacheTTL: time.Hour,
	}, store)
	Init(services.NewProductService(catalog, services.NewCustomProductService(store)))

	r := gin.New()
	r.PATCH("/products/:id", UpdateProduct)
	r.DELETE("/products/:id", DeleteProduct)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, models.ApiResponse) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var res models.ApiResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	return w, res
}

// Remote catalog products are read-only here: a mutation against a catalog
// id is rejected with 403, while an id nobody knows stays a plain 404.
func TestUpdateCatalogProductForbidden(t *testing.T) {
	r := setupMutationRouter(t)

	w, res := doRequest(r, http.MethodPatch, "/products/1", `{"title":"Renamed"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, res.Error)
	assert.Equal(t, "Catalog products cannot be edited", res.Message)
}

func TestDeleteCatalogProductForbidden(t *testing.T) {
	r := setupMutationRouter(t)

	w, res := doRequest(r, http.MethodDelete, "/products/1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, res.Error)
	assert.Equal(t, "Catalog products cannot be deleted", res.Message)
}

func TestUpdateUnknownProductNotFound(t *testing.T) {
	r := setupMutationRouter(t)

	w, res := doRequest(r, http.MethodPatch, "/products/9999", `{"title":"Renamed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", res.Message)
}

func TestDeleteUnknownProductNotFound(t *testing.T) {
	r := setupMutationRouter(t)

	w, _ := doRequest(r, http.MethodDelete, "/products/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndDeleteCustomProduct(t *testing.T) {
	r := setupMutationRouter(t)

	stock := 3
	created, err := customService.Create(models.ProductRequest{
		Title:    "Hand Truck",
		Price:    89.99,
		Stock:    &stock,
		Category: "general",
	})
	require.NoError(t, err)

	path := "/products/" + strconv.Itoa(created.ID)

	w, _ := doRequest(r, http.MethodPatch, path, `{"price":99.99}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
