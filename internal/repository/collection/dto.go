package collection

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/louvou/catalog/internal/domain"
)

type collectionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	CoverImage  string             `bson:"cover_image,omitempty"`
}

func (d collectionDoc) toDomain() domain.Collection {
	return domain.Collection{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		CoverImage:  d.CoverImage,
	}
}

func docFromDomain(c domain.Collection) collectionDoc {
	return collectionDoc{
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		CoverImage:  c.CoverImage,
	}
}
