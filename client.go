package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbMongo "github.com/louvou/catalog/internal/db/mongo"
	collectionrepo "github.com/louvou/catalog/internal/repository/collection"
	productrepo "github.com/louvou/catalog/internal/repository/product"
	collectionuc "github.com/louvou/catalog/internal/usecase/collection"
	productuc "github.com/louvou/catalog/internal/usecase/product"
	stylistuc "github.com/louvou/catalog/internal/usecase/stylist"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultDatabase         = "louvou"
)

// Client is the embedded catalog entry point. It talks to the document
// store directly and shares the service layer with the HTTP API.
type Client struct {
	store      *dbMongo.Store
	products   *productuc.Service
	collection *collectionuc.Service
	stylist    *stylistuc.Service
}

// New creates a catalog Client and connects to the document store.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.uri == "" {
		return nil, errors.New("catalog: store address required (use WithMongo)")
	}
	if cfg.database == "" {
		cfg.database = defaultDatabase
	}

	store, err := dbMongo.NewStore(ctx, dbMongo.Config{
		URI:      cfg.uri,
		Database: cfg.database,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("catalog: store not ready: %w", err)
	}

	return wireClient(store), nil
}

func wireClient(store *dbMongo.Store) *Client {
	productRepo := productrepo.New(store)
	collectionRepo := collectionrepo.New(store)

	return &Client{
		store:      store,
		products:   productuc.New(productRepo),
		collection: collectionuc.New(collectionRepo),
		stylist:    stylistuc.New(productRepo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Products returns the product service.
func (c *Client) Products() *ProductService {
	return &ProductService{svc: c.products}
}

// Collections returns the collection service.
func (c *Client) Collections() *CollectionService {
	return &CollectionService{svc: c.collection}
}

// Stylist returns the recommendation service.
func (c *Client) Stylist() *StylistService {
	return &StylistService{svc: c.stylist}
}
