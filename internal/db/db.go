// Package db defines the storage contracts shared by the document store
// and the transcript store backends.
package db

import (
	"github.com/louvou/catalog/internal/domain/query"
)

// FindQuery describes one bounded read against a document collection: the
// conjunction of the predicate set, capped at Limit documents, returned in
// the store's natural order (no sort is imposed).
type FindQuery struct {
	Collection string
	Predicates query.PredicateSet
	Limit      int64
}
