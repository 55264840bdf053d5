package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/louvou/catalog/internal/domain"
)

type mockRepo struct {
	listFn   func(ctx context.Context, limit int) ([]domain.Collection, error)
	createFn func(ctx context.Context, c domain.Collection) (string, error)
}

func (m *mockRepo) List(ctx context.Context, limit int) ([]domain.Collection, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockRepo) Create(ctx context.Context, c domain.Collection) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return "", nil
}

func TestList_PassesLimit(t *testing.T) {
	var gotLimit int
	repo := &mockRepo{listFn: func(_ context.Context, limit int) ([]domain.Collection, error) {
		gotLimit = limit
		return []domain.Collection{{Slug: "womens-couture", Title: "Women's Couture"}}, nil
	}}
	svc := New(repo)

	cols, err := svc.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 5 {
		t.Errorf("limit = %d", gotLimit)
	}
	if len(cols) != 1 {
		t.Errorf("collections = %d", len(cols))
	}
}

func TestCreate_RepoErrorWrapped(t *testing.T) {
	repo := &mockRepo{createFn: func(_ context.Context, _ domain.Collection) (string, error) {
		return "", domain.ErrStoreUnavailable
	}}
	svc := New(repo)

	_, err := svc.Create(context.Background(), domain.Collection{Slug: "s", Title: "S"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("error = %v", err)
	}
}
