package collection

import (
	"context"

	"github.com/louvou/catalog/internal/domain"
)

// Repository defines the storage contract for collections.
type Repository interface {
	List(ctx context.Context, limit int) ([]domain.Collection, error)
	Create(ctx context.Context, c domain.Collection) (string, error)
}
