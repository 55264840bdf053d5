package product

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/louvou/catalog/internal/domain"
)

// productDoc is the store-side document shape.
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Gender      string             `bson:"gender,omitempty"`
	Collection  string             `bson:"collection,omitempty"`
	Images      []string           `bson:"images,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	InStock     bool               `bson:"in_stock"`
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Gender:      d.Gender,
		Collection:  d.Collection,
		Images:      d.Images,
		Tags:        d.Tags,
		InStock:     d.InStock,
	}
}

// docFromDomain builds the insert document. The id is left zero so the
// store assigns one.
func docFromDomain(p domain.Product) productDoc {
	return productDoc{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Gender:      p.Gender,
		Collection:  p.Collection,
		Images:      p.Images,
		Tags:        p.Tags,
		InStock:     p.InStock,
	}
}
