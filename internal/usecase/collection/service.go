// Package collection lists and creates curated collections.
package collection

import (
	"context"
	"fmt"

	"github.com/louvou/catalog/internal/domain"
)

// Service handles collection operations.
type Service struct {
	repo Repository
}

// New creates a collection service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns up to limit collections in store order.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Collection, error) {
	cols, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// Create stores a new collection and returns its display id.
func (s *Service) Create(ctx context.Context, c domain.Collection) (string, error) {
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return "", fmt.Errorf("create collection: %w", err)
	}
	return id, nil
}
