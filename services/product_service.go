package services

import (
	"context"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
)

// ProductService merges the remote catalog with the local custom products
// into the one collection the dashboard and inventory views operate on.
type ProductService struct {
	catalog *CatalogService
	custom  *CustomProductService
}

func NewProductService(catalog *CatalogService, custom *CustomProductService) *ProductService {
	return &ProductService{catalog: catalog, custom: custom}
}

// AllProducts returns the remote collection with the custom products
// appended. No deduplication happens here: custom ids start past the
// catalog's demo range, so the union is id-unique by construction, and a
// collision would surface as duplicate rows rather than silent data loss.
func (s *ProductService) AllProducts(ctx context.Context) ([]models.Product, error) {
	remote, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	custom := s.custom.List()

	all := make([]models.Product, 0, len(remote)+len(custom))
	all = append(all, remote...)
	all = append(all, custom...)
	return all, nil
}

// FindByID looks a product up in the merged collection.
func (s *ProductService) FindByID(ctx context.Context, id int) (*models.Product, error) {
	all, err := s.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *ProductService) Catalog() *CatalogService      { return s.catalog }
func (s *ProductService) Custom() *CustomProductService { return s.custom }
