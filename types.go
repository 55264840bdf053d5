// Package catalog is an embedded client for the Lou Vou catalog store.
// It wires the repositories and services directly over MongoDB, without
// going through the HTTP API. Intended for loaders and back-office tools.
package catalog

import (
	"github.com/louvou/catalog/internal/domain"
)

// Gender values accepted on products and queries.
const (
	GenderMen    = domain.GenderMen
	GenderWomen  = domain.GenderWomen
	GenderUnisex = domain.GenderUnisex
)

// Product is a catalog item.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Category    string
	Gender      string
	Collection  string
	Images      []string
	Tags        []string
	InStock     bool
}

// Collection is a curated product grouping.
type Collection struct {
	ID          string
	Slug        string
	Title       string
	Description string
	CoverImage  string
}

func toDomainProduct(p Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
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

func fromDomainProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
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

func fromDomainProducts(items []domain.Product) []Product {
	out := make([]Product, len(items))
	for i, p := range items {
		out[i] = fromDomainProduct(p)
	}
	return out
}

func toDomainCollection(c Collection) domain.Collection {
	return domain.Collection{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		CoverImage:  c.CoverImage,
	}
}

func fromDomainCollection(c domain.Collection) Collection {
	return Collection{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		CoverImage:  c.CoverImage,
	}
}
