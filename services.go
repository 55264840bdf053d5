package catalog

import (
	"context"
	"fmt"

	"github.com/louvou/catalog/internal/domain/query"
	collectionuc "github.com/louvou/catalog/internal/usecase/collection"
	productuc "github.com/louvou/catalog/internal/usecase/product"
	stylistuc "github.com/louvou/catalog/internal/usecase/stylist"
)

const (
	defaultSearchLimit = 24
	maxSearchLimit     = 100
)

// Query narrows a product search. The zero value matches the whole
// catalog. All filters are combined with AND; tags match any-of.
type Query struct {
	Gender     string
	Collection string
	MinPrice   *float64
	MaxPrice   *float64
	Text       string
	Tags       []string
	Limit      int
}

func (q Query) criteria() query.Criteria {
	return query.Criteria{
		Gender:         q.Gender,
		CollectionSlug: q.Collection,
		PriceMin:       q.MinPrice,
		PriceMax:       q.MaxPrice,
		FreeText:       q.Text,
		TagTerms:       q.Tags,
	}
}

// ProductService lists and creates catalog products.
type ProductService struct {
	svc *productuc.Service
}

// Search returns products matching the query in store order.
func (s *ProductService) Search(ctx context.Context, q Query) ([]Product, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit < 1 || limit > maxSearchLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxSearchLimit)
	}

	items, err := s.svc.List(ctx, q.criteria(), limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return fromDomainProducts(items), nil
}

// Create stores a new product and returns its id.
func (s *ProductService) Create(ctx context.Context, p Product) (string, error) {
	id, err := s.svc.Create(ctx, toDomainProduct(p))
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

// CollectionService lists and creates curated collections.
type CollectionService struct {
	svc *collectionuc.Service
}

// List returns all collections in store order.
func (s *CollectionService) List(ctx context.Context) ([]Collection, error) {
	cols, err := s.svc.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	out := make([]Collection, len(cols))
	for i, c := range cols {
		out[i] = fromDomainCollection(c)
	}
	return out, nil
}

// Create stores a new collection and returns its id.
func (s *CollectionService) Create(ctx context.Context, c Collection) (string, error) {
	id, err := s.svc.Create(ctx, toDomainCollection(c))
	if err != nil {
		return "", fmt.Errorf("create collection: %w", err)
	}
	return id, nil
}

// StylistRequest describes the moment to dress for. Occasion is required.
type StylistRequest struct {
	Occasion  string
	Gender    string
	Vibe      string
	Weather   string
	BudgetMax *float64
}

// StylistService narrows the catalog by occasion, vibe, weather and budget.
type StylistService struct {
	svc *stylistuc.Service
}

// Recommend returns a short message and up to twelve matching products.
// Zero matches is a valid outcome, not an error.
func (s *StylistService) Recommend(ctx context.Context, req StylistRequest) (string, []Product, error) {
	rec, err := s.svc.Recommend(ctx, stylistuc.Request{
		Occasion:  req.Occasion,
		Gender:    req.Gender,
		Vibe:      req.Vibe,
		Weather:   req.Weather,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		return "", nil, fmt.Errorf("recommend: %w", err)
	}
	return rec.Message, fromDomainProducts(rec.Items), nil
}
