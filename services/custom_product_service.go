package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
)

var ErrProductNotFound = errors.New("product not found")

// CustomProductKey holds the JSON array of locally created products.
const CustomProductKey = "slooze_custom_product"

// Custom ids start here so they clear the remote catalog's demo id range
// (1..100). Safe for that fixed range, not against arbitrary remote ids.
const customIDBase = 101

// CustomProductService is CRUD over the locally created product collection.
// Every operation re-reads and re-writes the whole collection; with tens of
// records in a key-value store that is the simplest thing that works.
type CustomProductService struct {
	store storage.Store
}

func NewCustomProductService(store storage.Store) *CustomProductService {
	return &CustomProductService{store: store}
}

// List returns all custom products. A missing, unreadable or corrupt value
// is treated as an empty collection; the error is logged, never surfaced.
func (s *CustomProductService) List() []models.Product {
	raw, err := s.store.Get(CustomProductKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[custom-products] read failed: %v", err)
		}
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Printf("[custom-products] corrupt collection dropped: %v", err)
		return []models.Product{}
	}
	return products
}

// Create appends a new custom product. The id is one past the current
// maximum custom id (or 101 for an empty store) and both timestamps are
// stamped with the current time.
func (s *CustomProductService) Create(req models.ProductRequest) (models.Product, error) {
	products := s.List()

	now := time.Now().UTC().Format(time.RFC3339)
	product := models.Product{
		ID:          nextID(products),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		Thumbnail:   req.Thumbnail,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsCustom:    true,
	}

	products = append(products, product)
	if err := s.save(products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update merges the non-nil fields of req over the product with the given
// id and re-stamps updatedAt. Returns ErrProductNotFound for unknown ids.
func (s *CustomProductService) Update(id int, req models.UpdateProductRequest) (models.Product, error) {
	products := s.List()

	index := -1
	for i := range products {
		if products[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Product{}, ErrProductNotFound
	}

	product := products[index]
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Thumbnail != nil {
		product.Thumbnail = *req.Thumbnail
	}
	product.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	products[index] = product
	if err := s.save(products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Delete removes the product with the given id and reports whether a
// removal occurred.
func (s *CustomProductService) Delete(id int) (bool, error) {
	products := s.List()

	filtered := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return false, nil
	}

	if err := s.save(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Clear drops the whole custom product collection.
func (s *CustomProductService) Clear() error {
	return s.store.Remove(CustomProductKey)
}

func (s *CustomProductService) save(products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.store.Set(CustomProductKey, string(raw))
}

func nextID(products []models.Product) int {
	if len(products) == 0 {
		return customIDBase
	}
	maxID := products[0].ID
	for _, p := range products[1:] {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
