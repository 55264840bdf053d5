package product

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/louvou/catalog/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	findFn   func(ctx context.Context, q *db.FindQuery, dest any) error
	insertFn func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)

	lastQuery *db.FindQuery
}

func (m *mockStore) Find(ctx context.Context, q *db.FindQuery, dest any) error {
	m.lastQuery = q
	if m.findFn != nil {
		return m.findFn(ctx, q, dest)
	}
	return nil
}

func (m *mockStore) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, collection, doc)
	}
	return primitive.NewObjectID(), nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
