package stylist

import (
	"context"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
)

// Searcher runs bounded predicate queries against the product catalog.
type Searcher interface {
	Search(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error)
}
