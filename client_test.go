package catalog

import (
	"context"
	"testing"
	"time"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no store address provided")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithMongo("mongodb://localhost:27017", "louvou_test").apply(cfg)
	if cfg.uri != "mongodb://localhost:27017" {
		t.Errorf("uri = %q", cfg.uri)
	}
	if cfg.database != "louvou_test" {
		t.Errorf("database = %q", cfg.database)
	}

	WithReadinessTimeout(3 * time.Second).apply(cfg)
	if cfg.readinessTimeout != 3*time.Second {
		t.Errorf("readinessTimeout = %v", cfg.readinessTimeout)
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{store: nil}
	c.Close()
}

func TestQuery_Criteria(t *testing.T) {
	price := 250.0
	q := Query{
		Gender:     "women",
		Collection: "womens-couture",
		MaxPrice:   &price,
		Text:       "silk",
		Tags:       []string{"Wedding", "elegant"},
	}

	c := q.criteria()
	if c.Gender != "women" {
		t.Errorf("gender = %q", c.Gender)
	}
	if c.CollectionSlug != "womens-couture" {
		t.Errorf("collection = %q", c.CollectionSlug)
	}
	if c.PriceMax == nil || *c.PriceMax != 250 {
		t.Errorf("price max = %v", c.PriceMax)
	}
	if c.PriceMin != nil {
		t.Errorf("price min = %v, want nil", c.PriceMin)
	}
	if c.FreeText != "silk" {
		t.Errorf("free text = %q", c.FreeText)
	}
	if len(c.TagTerms) != 2 {
		t.Errorf("tag terms = %v", c.TagTerms)
	}
}

func TestProductRoundTrip(t *testing.T) {
	p := Product{
		Title:    "Silk scarf",
		Price:    49.5,
		Category: "accessories",
		Gender:   GenderWomen,
		Tags:     []string{"silk"},
		InStock:  true,
	}

	got := fromDomainProduct(toDomainProduct(p))
	if got.Title != p.Title || got.Price != p.Price || got.Gender != p.Gender || !got.InStock {
		t.Errorf("round trip changed product: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "silk" {
		t.Errorf("tags = %v", got.Tags)
	}
}
