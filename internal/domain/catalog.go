// Package domain holds the catalog's core types and sentinel errors.
package domain

// Gender values accepted on products and filter criteria.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product is a catalog record. The store owns the document; this layer
// only reads it and renders the store id as a hex string.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Category    string
	Gender      string
	Collection  string // collection slug this product belongs to
	Images      []string
	Tags        []string
	InStock     bool
}

// Collection is a curated product grouping (e.g. mens-luxury).
type Collection struct {
	ID          string
	Slug        string
	Title       string
	Description string
	CoverImage  string
}

// ChatMessage is one entry in a stylist session transcript.
// The recommendation rule layer never reads these; they exist only so a
// session's exchange can be replayed.
type ChatMessage struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"` // user | assistant
	Content   string `json:"content"`
	SentAt    int64  `json:"sent_at"` // unix millis
}
