// Package query is the catalog's criteria-to-predicate core: it takes raw,
// partially populated filter input and folds it into a canonical predicate
// set a store backend can translate into one query.
package query

// Criteria is the raw filter input. Every field is optional: empty strings,
// nil pointers and empty slices all mean "no constraint". A zero Criteria
// normalizes to an empty PredicateSet, which matches everything.
type Criteria struct {
	Gender         string // men | women | unisex
	CollectionSlug string
	PriceMin       *float64
	PriceMax       *float64
	FreeText       string
	TagTerms       []string // occasion/vibe/weather terms, merged upstream
	BudgetMax      *float64 // collapses into the price upper bound
}
