package port

import (
	"context"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
	List(ctx context.Context, category string) ([]domain.Product, error)
	// Search matches a case-insensitive substring against name and
	// description. No ranking.
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
}
