package catalog

import "github.com/louvou/catalog/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrAlreadyExists    = domain.ErrAlreadyExists
	ErrInvalidInput     = domain.ErrInvalidInput
	ErrStoreUnavailable = domain.ErrStoreUnavailable
)
