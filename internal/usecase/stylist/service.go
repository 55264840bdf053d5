// Package stylist is the rule-based recommendation layer: it narrows the
// catalog by occasion, vibe, weather and budget. Deliberately a
// deterministic rule engine, not a model -- recommendations are the first
// N matches in store order, not the "best" N.
package stylist

import (
	"context"
	"fmt"
	"strings"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
	"github.com/louvou/catalog/internal/metrics"
)

// ResultCap bounds every recommendation regardless of how many documents
// match. This layer exposes no limit parameter.
const ResultCap = 12

const introMessage = "Refined selections tailored to your moment."

// Request is the stylist input surface. Occasion is mandatory; at the
// predicate level it is indistinguishable from vibe and weather -- all
// three fold into tag terms.
type Request struct {
	Occasion  string
	Gender    string
	Vibe      string
	Weather   string
	BudgetMax *float64
}

// Recommendation is the per-call result: a templated message, an echo of
// the input, and up to ResultCap matching products. Zero items is a
// valid, non-error outcome.
type Recommendation struct {
	Message  string
	Criteria Request
	Items    []domain.Product
}

// Service narrows the catalog by the stylist's soft criteria. Stateless:
// each call builds and discards its own predicate set.
type Service struct {
	repo Searcher
}

// New creates a stylist service.
func New(repo Searcher) *Service {
	return &Service{repo: repo}
}

// Recommend translates the request into catalog criteria and returns the
// first ResultCap matches in store order.
func (s *Service) Recommend(ctx context.Context, req Request) (Recommendation, error) {
	if strings.TrimSpace(req.Occasion) == "" {
		return Recommendation{}, fmt.Errorf("%w: occasion is required", domain.ErrInvalidInput)
	}

	set := query.Normalize(query.Criteria{
		Gender:    req.Gender,
		TagTerms:  []string{req.Occasion, req.Vibe, req.Weather},
		BudgetMax: req.BudgetMax,
	})

	items, err := s.repo.Search(ctx, set, ResultCap)
	if err != nil {
		metrics.CatalogSearchesTotal.WithLabelValues("stylist", "error").Inc()
		return Recommendation{}, fmt.Errorf("recommend: %w", err)
	}

	metrics.CatalogSearchesTotal.WithLabelValues("stylist", "ok").Inc()
	return Recommendation{
		Message:  introMessage,
		Criteria: req,
		Items:    items,
	}, nil
}
