package chi

import (
	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/usecase/stylist"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned to clients.
const (
	codeBadRequest            = "bad_request"
	codeValidationFailed      = "validation_failed"
	codeNotFound              = "not_found"
	codeStoreUnavailable      = "store_unavailable"
	codeTranscriptUnavailable = "transcript_unavailable"
	codeInternalError         = "internal_error"
)

type createResponse struct {
	ID string `json:"id"`
}

type productResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Gender      string   `json:"gender,omitempty"`
	Collection  string   `json:"collection,omitempty"`
	Images      []string `json:"images,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	InStock     bool     `json:"in_stock"`
}

type productListResponse struct {
	Items []productResponse `json:"items"`
}

// createProductRequest mirrors the product write payload. Price must be
// non-negative; gender, when given, must be a known value.
type createProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=men women unisex"`
	Collection  string   `json:"collection"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
	InStock     *bool    `json:"in_stock"` // defaults to true
}

type collectionResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
}

type collectionListResponse struct {
	Items []collectionResponse `json:"items"`
}

type createCollectionRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}

// stylistRequest carries the recommendation inputs. budget_max is
// deliberately not range-checked: a negative budget passes through and
// the store returns nothing for it.
type stylistRequest struct {
	SessionID string   `json:"session_id"`
	Occasion  string   `json:"occasion" validate:"required"`
	Gender    string   `json:"gender" validate:"omitempty,oneof=men women unisex"`
	Vibe      string   `json:"vibe"`
	Weather   string   `json:"weather"`
	BudgetMax *float64 `json:"budget_max"`
}

type stylistCriteriaEcho struct {
	Occasion  string   `json:"occasion"`
	Gender    string   `json:"gender,omitempty"`
	Vibe      string   `json:"vibe,omitempty"`
	Weather   string   `json:"weather,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`
}

type stylistResponse struct {
	Message         string              `json:"message"`
	Criteria        stylistCriteriaEcho `json:"criteria"`
	Recommendations []productResponse   `json:"recommendations"`
}

type messageListResponse struct {
	Items []domain.ChatMessage `json:"items"`
}

func productToResponse(p domain.Product) productResponse {
	return productResponse{
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

func productsToResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productToResponse(p)
	}
	return out
}

func collectionToResponse(c domain.Collection) collectionResponse {
	return collectionResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		CoverImage:  c.CoverImage,
	}
}

func criteriaEcho(req stylist.Request) stylistCriteriaEcho {
	return stylistCriteriaEcho{
		Occasion:  req.Occasion,
		Gender:    req.Gender,
		Vibe:      req.Vibe,
		Weather:   req.Weather,
		BudgetMax: req.BudgetMax,
	}
}
