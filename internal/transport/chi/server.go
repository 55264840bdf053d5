// Package chi exposes the catalog API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/louvou/catalog/internal/domain"
	"github.com/louvou/catalog/internal/domain/query"
	"github.com/louvou/catalog/internal/logger"
	"github.com/louvou/catalog/internal/version"

	collectionuc "github.com/louvou/catalog/internal/usecase/collection"
	healthuc "github.com/louvou/catalog/internal/usecase/health"
	productuc "github.com/louvou/catalog/internal/usecase/product"
	stylistuc "github.com/louvou/catalog/internal/usecase/stylist"
)

// Default and maximum page sizes for product listing. Limits outside
// [1, maxLimit] are rejected here, at the boundary -- they are never
// silently clamped.
const (
	defaultProductLimit = 24
	maxLimit            = 100
)

// TranscriptLog records stylist exchanges per session. The recommendation
// layer itself never reads it.
type TranscriptLog interface {
	Append(ctx context.Context, msg domain.ChatMessage) error
	History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the catalog use cases to HTTP handlers.
type Server struct {
	products      *productuc.Service
	collections   *collectionuc.Service
	stylist       *stylistuc.Service
	transcripts   TranscriptLog
	health        *healthuc.Service
	logger        *zap.Logger
	validate      *validator.Validate
	errorHandlers []errorHandler
	defaultLimit  int
}

// NewServer creates an HTTP API server. transcripts may be nil when the
// transcript log is not configured.
func NewServer(
	products *productuc.Service,
	collections *collectionuc.Service,
	stylist *stylistuc.Service,
	transcripts TranscriptLog,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		products:     products,
		collections:  collections,
		stylist:      stylist,
		transcripts:  transcripts,
		health:       health,
		logger:       logger,
		validate:     validator.New(),
		defaultLimit: defaultProductLimit,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusBadGateway, codeStoreUnavailable),
		sentinelHandler(domain.ErrTranscriptUnavailable, http.StatusBadGateway, codeTranscriptUnavailable),
	}
	return s
}

// WithDefaultLimit overrides the default product page size.
func (s *Server) WithDefaultLimit(limit int) *Server {
	if limit > 0 {
		s.defaultLimit = limit
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api", func(r chi.Router) {
		r.Get("/collections", s.ListCollections)
		r.Post("/collections", s.CreateCollection)
		r.Get("/products", s.ListProducts)
		r.Post("/products", s.CreateProduct)
		r.Post("/stylist", s.Stylist)
		r.Get("/stylist/sessions/{sessionID}/messages", s.SessionMessages)
	})
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Lou Vou catalog API running",
		"version": version.Version,
	})
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()

	var minPrice, maxPrice *float64
	if err := runtime.BindQueryParameter("form", true, false, "min_price", qv, &minPrice); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid min_price: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "max_price", qv, &maxPrice); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid max_price: "+err.Error())
		return
	}

	limit, ok := s.bindLimit(w, qv, s.defaultLimit)
	if !ok {
		return
	}

	c := query.Criteria{
		Gender:         qv.Get("gender"),
		CollectionSlug: qv.Get("collection"),
		PriceMin:       minPrice,
		PriceMax:       maxPrice,
		FreeText:       qv.Get("q"),
	}

	items, err := s.products.List(r.Context(), c, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productListResponse{Items: productsToResponse(items)})
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	id, err := s.products.Create(r.Context(), domain.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Gender:      req.Gender,
		Collection:  req.Collection,
		Images:      req.Images,
		Tags:        req.Tags,
		InStock:     inStock,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{ID: id})
}

// ListCollections handles GET /api/collections. The limit is optional:
// absent means unbounded, present means it must sit in [1, 100].
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.bindLimit(w, r.URL.Query(), 0)
	if !ok {
		return
	}

	cols, err := s.collections.List(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]collectionResponse, len(cols))
	for i, c := range cols {
		items[i] = collectionToResponse(c)
	}
	writeJSON(w, http.StatusOK, collectionListResponse{Items: items})
}

// CreateCollection handles POST /api/collections.
func (s *Server) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := s.collections.Create(r.Context(), domain.Collection{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{ID: id})
}

// Stylist handles POST /api/stylist.
func (s *Server) Stylist(w http.ResponseWriter, r *http.Request) {
	var req stylistRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := s.stylist.Recommend(r.Context(), stylistuc.Request{
		Occasion:  req.Occasion,
		Gender:    req.Gender,
		Vibe:      req.Vibe,
		Weather:   req.Weather,
		BudgetMax: req.BudgetMax,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	s.logExchange(r.Context(), req, rec.Message)

	writeJSON(w, http.StatusOK, stylistResponse{
		Message:         rec.Message,
		Criteria:        criteriaEcho(rec.Criteria),
		Recommendations: productsToResponse(rec.Items),
	})
}

// SessionMessages handles GET /api/stylist/sessions/{sessionID}/messages.
func (s *Server) SessionMessages(w http.ResponseWriter, r *http.Request) {
	if s.transcripts == nil {
		writeError(w, http.StatusNotFound, codeNotFound, "transcript log is not configured")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	msgs, err := s.transcripts.History(r.Context(), sessionID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messageListResponse{Items: msgs})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// logExchange appends the stylist request and reply to the session
// transcript. Best effort: a transcript failure never fails the
// recommendation, it is only logged.
func (s *Server) logExchange(ctx context.Context, req stylistRequest, reply string) {
	if s.transcripts == nil || req.SessionID == "" {
		return
	}
	log := logger.FromContext(ctx)

	criteria, err := json.Marshal(criteriaEcho(stylistuc.Request{
		Occasion:  req.Occasion,
		Gender:    req.Gender,
		Vibe:      req.Vibe,
		Weather:   req.Weather,
		BudgetMax: req.BudgetMax,
	}))
	if err != nil {
		log.Warn("encode transcript entry", zap.Error(err))
		return
	}

	now := time.Now().UnixMilli()
	entries := []domain.ChatMessage{
		{SessionID: req.SessionID, Role: "user", Content: string(criteria), SentAt: now},
		{SessionID: req.SessionID, Role: "assistant", Content: reply, SentAt: now},
	}
	for _, msg := range entries {
		if err := s.transcripts.Append(ctx, msg); err != nil {
			log.Warn("append transcript", zap.String("session_id", req.SessionID), zap.Error(err))
			return
		}
	}
}

// bindLimit parses an optional limit query parameter, falling back to
// def. A present limit outside [1, maxLimit] is a caller-input error.
func (s *Server) bindLimit(w http.ResponseWriter, qv url.Values, def int) (int, bool) {
	var limitParam *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", qv, &limitParam); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid limit: "+err.Error())
		return 0, false
	}

	limit := def
	if limitParam != nil {
		limit = *limitParam
		if limit < 1 || limit > maxLimit {
			writeError(w, http.StatusBadRequest, codeValidationFailed,
				fmt.Sprintf("limit must be between 1 and %d", maxLimit))
			return 0, false
		}
	}
	return limit, true
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dest); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return false
	}
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrNotFound,
		domain.ErrStoreUnavailable,
		domain.ErrTranscriptUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}
