// Package collection persists curated product collections.
package collection

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/louvou/catalog/internal/db"
	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
)

const collectionName = "collection"

// store is the consumer interface for collection operations.
type store interface {
	Find(ctx context.Context, q *db.FindQuery, dest any) error
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
}

// Repo implements the collection storage contract.
type Repo struct {
	store store
}

// New creates a collection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns up to limit collections in store order.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Collection, error) {
	var docs []collectionDoc
	q := &db.FindQuery{
		Collection: collectionName,
		Predicates: query.PredicateSet{},
		Limit:      int64(limit),
	}
	if err := r.store.Find(ctx, q, &docs); err != nil {
		return nil, fmt.Errorf("find collections: %w: %w", domain.ErrStoreUnavailable, err)
	}

	out := make([]domain.Collection, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Create stores a new collection and returns its id in hex string form.
func (r *Repo) Create(ctx context.Context, c domain.Collection) (string, error) {
	oid, err := r.store.InsertOne(ctx, collectionName, docFromDomain(c))
	if err != nil {
		return "", fmt.Errorf("insert collection: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return oid.Hex(), nil
}
