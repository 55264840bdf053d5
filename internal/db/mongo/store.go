// Package mongo implements the document store backend on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/louvou/catalog/internal/db"
)

const connectTimeout = 5 * time.Second

// Config holds connection parameters for the document store.
type Config struct {
	URI      string
	Database string
}

// Store wraps a MongoDB database handle.
type Store struct {
	client *mongo.Client
	mdb    *mongo.Database
}

// NewStore connects to MongoDB and verifies the connection with a ping.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{client: client, mdb: client.Database(cfg.Database)}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close disconnects from the store.
func (s *Store) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for document store: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Find runs one bounded query composed from q.Predicates and decodes every
// match into dest (a pointer to a slice). No sort is applied: ordering is
// the store's natural order.
func (s *Store) Find(ctx context.Context, q *db.FindQuery, dest any) error {
	if q.Collection == "" {
		return fmt.Errorf("collection is required")
	}

	findOpts := options.Find()
	if q.Limit > 0 {
		findOpts.SetLimit(q.Limit)
	}

	cursor, err := s.mdb.Collection(q.Collection).Find(ctx, buildFilter(q.Predicates), findOpts)
	if err != nil {
		return &db.Error{Op: db.OpFind, Err: err}
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, dest); err != nil {
		return &db.Error{Op: db.OpFind, Err: err}
	}
	return nil
}

// InsertOne stores a document and returns its generated object id.
func (s *Store) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := s.mdb.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, &db.Error{Op: db.OpInsert, Err: err}
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}
