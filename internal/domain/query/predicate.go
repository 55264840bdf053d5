package query

// Kind discriminates the closed set of predicate shapes. A store backend
// switches over these four cases and nothing else.
type Kind string

const (
	// KindEquals is an exact field match.
	KindEquals Kind = "equals"
	// KindRange is a bounded numeric range; either side may be open.
	KindRange Kind = "range"
	// KindSubstringAnyOf is one case-insensitive substring disjunction
	// across several fields.
	KindSubstringAnyOf Kind = "substring_any_of"
	// KindSetIntersects matches when any document element equals any term.
	KindSetIntersects Kind = "set_intersects"
)

// Predicate is a single testable condition on a document field.
type Predicate struct {
	kind        Kind
	field       string
	equals      string
	min, max    *float64
	needle      string
	fields      []string
	arrayFields []string
	terms       []string
}

// NewEquals creates an exact-match predicate.
func NewEquals(field, value string) Predicate {
	return Predicate{kind: KindEquals, field: field, equals: value}
}

// NewRange creates a numeric range predicate. Bound values are copied so
// the predicate stays immutable after construction; a nil bound leaves
// that side of the range open.
func NewRange(field string, min, max *float64) Predicate {
	return Predicate{kind: KindRange, field: field, min: copyBound(min), max: copyBound(max)}
}

// NewSubstringAnyOf creates a disjunctive case-insensitive substring
// predicate: needle against any scalar field, or element-wise against any
// array field.
func NewSubstringAnyOf(needle string, fields, arrayFields []string) Predicate {
	return Predicate{
		kind:        KindSubstringAnyOf,
		needle:      needle,
		fields:      append([]string(nil), fields...),
		arrayFields: append([]string(nil), arrayFields...),
	}
}

// NewSetIntersects creates a set-membership predicate: the document's
// array field must share at least one element with terms (OR semantics).
func NewSetIntersects(field string, terms []string) Predicate {
	return Predicate{kind: KindSetIntersects, field: field, terms: append([]string(nil), terms...)}
}

// Kind returns the predicate shape.
func (p Predicate) Kind() Kind { return p.kind }

// Field returns the target field for equals, range and set predicates.
func (p Predicate) Field() string { return p.field }

// Equals returns the exact-match value.
func (p Predicate) Equals() string { return p.equals }

// Min returns the inclusive lower bound, nil when open.
func (p Predicate) Min() *float64 { return p.min }

// Max returns the inclusive upper bound, nil when open.
func (p Predicate) Max() *float64 { return p.max }

// Needle returns the substring to match.
func (p Predicate) Needle() string { return p.needle }

// Fields returns the scalar fields of a substring disjunction.
func (p Predicate) Fields() []string { return p.fields }

// ArrayFields returns the array fields matched element-wise.
func (p Predicate) ArrayFields() []string { return p.arrayFields }

// Terms returns the set-membership terms.
func (p Predicate) Terms() []string { return p.terms }

// PredicateSet is the canonical conjunction of predicates derived from one
// Criteria value: at most one predicate per field, with the substring
// disjunction as the only OR sub-clause.
type PredicateSet []Predicate

// IsEmpty reports whether the set constrains nothing.
func (s PredicateSet) IsEmpty() bool { return len(s) == 0 }

func copyBound(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
