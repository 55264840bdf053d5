package stylist

import (
	"context"
	"errors"
	"testing"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
)

type mockSearcher struct {
	searchFn func(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error)

	lastSet   query.PredicateSet
	lastLimit int
}

func (m *mockSearcher) Search(ctx context.Context, set query.PredicateSet, limit int) ([]domain.Product, error) {
	m.lastSet = set
	m.lastLimit = limit
	if m.searchFn != nil {
		return m.searchFn(ctx, set, limit)
	}
	return nil, nil
}

func floatPtr(f float64) *float64 { return &f }

func TestRecommend_OccasionRequired(t *testing.T) {
	svc := New(&mockSearcher{})

	_, err := svc.Recommend(context.Background(), Request{Occasion: "  "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestRecommend_FoldsInputsIntoPredicates(t *testing.T) {
	repo := &mockSearcher{}
	svc := New(repo)

	_, err := svc.Recommend(context.Background(), Request{
		Occasion:  "Wedding",
		Gender:    "women",
		Vibe:      "elegant",
		BudgetMax: floatPtr(5000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastLimit != ResultCap {
		t.Errorf("limit = %d, want fixed cap %d", repo.lastLimit, ResultCap)
	}

	var sawTags, sawBudget, sawGender bool
	for _, p := range repo.lastSet {
		switch p.Kind() {
		case query.KindSetIntersects:
			sawTags = true
			want := []string{"wedding", "elegant"}
			if len(p.Terms()) != len(want) {
				t.Errorf("terms = %v, want %v", p.Terms(), want)
			}
			for i, term := range want {
				if p.Terms()[i] != term {
					t.Errorf("terms[%d] = %q, want %q", i, p.Terms()[i], term)
				}
			}
		case query.KindRange:
			sawBudget = true
			if p.Min() != nil || p.Max() == nil || *p.Max() != 5000 {
				t.Errorf("budget predicate = [%v, %v]", p.Min(), p.Max())
			}
		case query.KindEquals:
			sawGender = true
			if p.Field() != "gender" || p.Equals() != "women" {
				t.Errorf("equals predicate = (%s, %s)", p.Field(), p.Equals())
			}
		}
	}
	if !sawTags || !sawBudget || !sawGender {
		t.Errorf("predicate coverage: tags=%v budget=%v gender=%v", sawTags, sawBudget, sawGender)
	}
}

func TestRecommend_EchoesCriteriaAndMessage(t *testing.T) {
	repo := &mockSearcher{searchFn: func(_ context.Context, _ query.PredicateSet, _ int) ([]domain.Product, error) {
		return []domain.Product{{Title: "Evening gown"}}, nil
	}}
	svc := New(repo)

	req := Request{Occasion: "gala", Vibe: "bold"}
	rec, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Message == "" {
		t.Error("message must always be set")
	}
	if rec.Criteria != req {
		t.Errorf("criteria echo = %+v", rec.Criteria)
	}
	if len(rec.Items) != 1 {
		t.Errorf("items = %d", len(rec.Items))
	}
}

func TestRecommend_ZeroMatchesIsValid(t *testing.T) {
	svc := New(&mockSearcher{})

	rec, err := svc.Recommend(context.Background(), Request{Occasion: "regatta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Items) != 0 {
		t.Errorf("items = %d", len(rec.Items))
	}
	if rec.Message == "" {
		t.Error("message must be set even with zero matches")
	}
}

func TestRecommend_SearchFailurePassesThrough(t *testing.T) {
	repo := &mockSearcher{searchFn: func(_ context.Context, _ query.PredicateSet, _ int) ([]domain.Product, error) {
		return nil, domain.ErrStoreUnavailable
	}}
	svc := New(repo)

	_, err := svc.Recommend(context.Background(), Request{Occasion: "wedding"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("error = %v", err)
	}
}
