package query

import "strings"

// Document fields the substring disjunction searches.
var (
	textFields      = []string{"title", "description"}
	textArrayFields = []string{"tags"}
)

// Normalize folds raw criteria into a canonical PredicateSet. It is total
// over any Criteria value and never fails: absent or empty fields simply
// emit no predicate. Calling it twice on the same value yields an
// identical set.
//
// An inverted price range (min > max) is passed through untouched; the
// store returns an empty result for it rather than erroring.
func Normalize(c Criteria) PredicateSet {
	var set PredicateSet

	if g := strings.TrimSpace(c.Gender); g != "" {
		set = append(set, NewEquals("gender", g))
	}
	if slug := strings.TrimSpace(c.CollectionSlug); slug != "" {
		set = append(set, NewEquals("collection", slug))
	}

	// BudgetMax collapses into the price upper bound; when both it and
	// PriceMax are present the stricter (lower) one wins. They are never
	// emitted as two separate predicates.
	upper := c.PriceMax
	if c.BudgetMax != nil && (upper == nil || *c.BudgetMax < *upper) {
		upper = c.BudgetMax
	}
	if c.PriceMin != nil || upper != nil {
		set = append(set, NewRange("price", c.PriceMin, upper))
	}

	if q := strings.TrimSpace(c.FreeText); q != "" {
		set = append(set, NewSubstringAnyOf(q, textFields, textArrayFields))
	}

	if terms := normalizeTerms(c.TagTerms); len(terms) > 0 {
		set = append(set, NewSetIntersects("tags", terms))
	}

	return set
}

// normalizeTerms lower-cases and trims tag terms, drops empty ones and
// deduplicates preserving first-seen order.
func normalizeTerms(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
