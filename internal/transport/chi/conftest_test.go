package chi

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
	collectionuc "github.com/louvou/catalog/internal/usecase/collection"
	healthuc "github.com/louvou/catalog/internal/usecase/health"
	productuc "github.com/louvou/catalog/internal/usecase/product"
	stylistuc "github.com/louvou/catalog/internal/usecase/stylist"
)

// mockProductRepo implements the product storage contract for tests.
type mockProductRepo struct {
	searchFn func(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error)
	createFn func(ctx context.Context, p domain.Product) (string, error)

	lastSet   query.PredicateSet
	lastLimit int
}

func (m *mockProductRepo) Search(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error) {
	m.lastSet = set
	m.lastLimit = limit
	if m.searchFn != nil {
		return m.searchFn(ctx, set, limit)
	}
	return nil, nil
}

func (m *mockProductRepo) Create(ctx context.Context, p domain.Product) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return "6540a1b2c3d4e5f6a7b8c9d0", nil
}

type mockCollectionRepo struct {
	listFn   func(ctx context.Context, limit int) ([]domain.Collection, error)
	createFn func(ctx context.Context, c domain.Collection) (string, error)
}

func (m *mockCollectionRepo) List(ctx context.Context, limit int) ([]domain.Collection, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockCollectionRepo) Create(ctx context.Context, c domain.Collection) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return "6540a1b2c3d4e5f6a7b8c9d1", nil
}

type mockTranscripts struct {
	appendErr error
	historyFn func(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	appended  []domain.ChatMessage
}

func (m *mockTranscripts) Append(_ context.Context, msg domain.ChatMessage) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, msg)
	return nil
}

func (m *mockTranscripts) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, sessionID)
	}
	return m.appended, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type testEnv struct {
	router      chi.Router
	products    *mockProductRepo
	collections *mockCollectionRepo
	transcripts *mockTranscripts
	storePing   *mockPinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := &mockProductRepo{}
	collections := &mockCollectionRepo{}
	transcripts := &mockTranscripts{}
	storePing := &mockPinger{}

	srv := NewServer(
		productuc.New(products),
		collectionuc.New(collections),
		stylistuc.New(products),
		transcripts,
		healthuc.New(storePing, &mockPinger{}),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	srv.Register(r)

	return &testEnv{
		router:      r,
		products:    products,
		collections: collections,
		transcripts: transcripts,
		storePing:   storePing,
	}
}
