// Package product lists and creates catalog products.
package product

import (
	"context"
	"fmt"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
	"github.com/louvou/catalog/internal/metrics"
)

// Service handles catalog product operations.
type Service struct {
	repo Repository
}

// New creates a product service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List normalizes the criteria and runs one bounded query against the
// store. The result comes back in store order; no ranking is applied. The
// limit must already be range-checked at the API boundary.
func (s *Service) List(ctx context.Context, c query.Criteria, limit int) ([]domain.Product, error) {
	set := query.Normalize(c)

	items, err := s.repo.Search(ctx, set, limit)
	if err != nil {
		metrics.CatalogSearchesTotal.WithLabelValues("products", "error").Inc()
		return nil, fmt.Errorf("list products: %w", err)
	}

	metrics.CatalogSearchesTotal.WithLabelValues("products", "ok").Inc()
	return items, nil
}

// Create stores a new product and returns its display id.
func (s *Service) Create(ctx context.Context, p domain.Product) (string, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return id, nil
}
