package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/louvou/catalog/internal/domain/query"
)

// buildFilter translates a PredicateSet into one bson.M conjunction. The
// substring disjunction is the only $or sub-clause, so free text narrows,
// never widens, the other filters. An empty set yields bson.M{}, which
// matches every document.
func buildFilter(set query.PredicateSet) bson.M {
	filter := bson.M{}
	for _, p := range set {
		switch p.Kind() {
		case query.KindEquals:
			filter[p.Field()] = p.Equals()
		case query.KindRange:
			filter[p.Field()] = buildRange(p)
		case query.KindSubstringAnyOf:
			filter["$or"] = buildSubstringAnyOf(p)
		case query.KindSetIntersects:
			filter[p.Field()] = bson.M{"$in": p.Terms()}
		}
	}
	return filter
}

func buildRange(p query.Predicate) bson.M {
	cond := bson.M{}
	if p.Min() != nil {
		cond["$gte"] = *p.Min()
	}
	if p.Max() != nil {
		cond["$lte"] = *p.Max()
	}
	return cond
}

// buildSubstringAnyOf emits a case-insensitive substring clause per field.
// The needle is QuoteMeta-escaped: callers get literal substring matching,
// not a regex surface.
func buildSubstringAnyOf(p query.Predicate) bson.A {
	pattern := regexp.QuoteMeta(p.Needle())

	or := bson.A{}
	for _, f := range p.Fields() {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	for _, f := range p.ArrayFields() {
		or = append(or, bson.M{f: bson.M{"$elemMatch": bson.M{"$regex": pattern, "$options": "i"}}})
	}
	return or
}
