package product

import (
	"context"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
)

// Repository defines the storage contract for products.
type Repository interface {
	Search(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (string, error)
}
