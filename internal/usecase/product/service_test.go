package product

import (
	"context"
	"errors"
	"testing"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
)

type mockRepo struct {
	searchFn func(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error)
	createFn func(ctx context.Context, p domain.Product) (string, error)

	lastSet   query.PredicateSet
	lastLimit int
}

func (m *mockRepo) Search(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error) {
	m.lastSet = set
	m.lastLimit = limit
	if m.searchFn != nil {
		return m.searchFn(ctx, set, limit)
	}
	return nil, nil
}

func (m *mockRepo) Create(ctx context.Context, p domain.Product) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return "", nil
}

func TestList_NormalizesBeforeQuerying(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	max := 100.0
	budget := 50.0
	_, err := svc.List(context.Background(), query.Criteria{
		Gender:    "women",
		PriceMax:  &max,
		BudgetMax: &budget,
		TagTerms:  []string{"Formal", "formal"},
	}, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastLimit != 24 {
		t.Errorf("limit = %d", repo.lastLimit)
	}
	// gender + collapsed price bound + deduped tags
	if len(repo.lastSet) != 3 {
		t.Fatalf("predicates = %d, want 3", len(repo.lastSet))
	}
	for _, p := range repo.lastSet {
		if p.Kind() == query.KindRange && *p.Max() != 50.0 {
			t.Errorf("upper bound = %v, want the stricter 50", *p.Max())
		}
	}
}

func TestList_EmptyCriteriaMatchesEverything(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	if _, err := svc.List(context.Background(), query.Criteria{}, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.lastSet.IsEmpty() {
		t.Errorf("expected empty predicate set, got %d", len(repo.lastSet))
	}
}

func TestList_RepoErrorWrapped(t *testing.T) {
	repo := &mockRepo{searchFn: func(_ context.Context, _ query.PredicateSet, _ int) ([]domain.Product, error) {
		return nil, domain.ErrStoreUnavailable
	}}
	svc := New(repo)

	_, err := svc.List(context.Background(), query.Criteria{}, 10)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("error = %v", err)
	}
}

func TestCreate_ReturnsRepoID(t *testing.T) {
	repo := &mockRepo{createFn: func(_ context.Context, _ domain.Product) (string, error) {
		return "6540a1b2c3d4e5f6a7b8c9d0", nil
	}}
	svc := New(repo)

	id, err := svc.Create(context.Background(), domain.Product{Title: "Belt", Price: 35, Category: "accessories"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "6540a1b2c3d4e5f6a7b8c9d0" {
		t.Errorf("id = %q", id)
	}
}
