package service

import (
	"context"
	"strings"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/port"
	"github.com/google/uuid"
)

type CatalogService struct {
	products port.ProductRepository
}

func NewCatalog(products port.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.List(ctx, strings.TrimSpace(category))
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.Validationf("search query is required")
	}

	return s.products.Search(ctx, query)
}
