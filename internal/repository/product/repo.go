// Package product persists and queries catalog products.
package product

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/louvou/catalog/internal/db"
	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
)

// collectionName is the document store collection holding products.
const collectionName = "product"

// store is the consumer interface for product operations (ISP).
type store interface {
	Find(ctx context.Context, q *db.FindQuery, dest any) error
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
}

// Repo implements the product storage contract over the document store.
type Repo struct {
	store store
}

// New creates a product repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search executes one bounded query for the predicate set and returns the
// matches in store order, ids rendered in hex string form.
func (r *Repo) Search(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error) {
	var docs []productDoc
	q := &db.FindQuery{
		Collection: collectionName,
		Predicates: set,
		Limit:      int64(limit),
	}
	if err := r.store.Find(ctx, q, &docs); err != nil {
		return nil, fmt.Errorf("find products: %w: %w", domain.ErrStoreUnavailable, err)
	}

	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Create stores a new product and returns its id in hex string form.
func (r *Repo) Create(ctx context.Context, p domain.Product) (string, error) {
	oid, err := r.store.InsertOne(ctx, collectionName, docFromDomain(p))
	if err != nil {
		return "", fmt.Errorf("insert product: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return oid.Hex(), nil
}
