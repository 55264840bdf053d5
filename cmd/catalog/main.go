package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/louvou/catalog/internal/config"
	dbMongo "github.com/louvou/catalog/internal/db/mongo"
	dbRedis "github.com/louvou/catalog/internal/db/redis"
	logpkg "github.com/louvou/catalog/internal/logger"
	"github.com/louvou/catalog/internal/metrics"
	collectionrepo "github.com/louvou/catalog/internal/repository/collection"
	productrepo "github.com/louvou/catalog/internal/repository/product"
	transcriptrepo "github.com/louvou/catalog/internal/repository/transcript"
	chiTransport "github.com/louvou/catalog/internal/transport/chi"
	collectionuc "github.com/louvou/catalog/internal/usecase/collection"
	healthuc "github.com/louvou/catalog/internal/usecase/health"
	productuc "github.com/louvou/catalog/internal/usecase/product"
	stylistuc "github.com/louvou/catalog/internal/usecase/stylist"
	"github.com/louvou/catalog/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalog API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("mongo_db", cfg.Mongo.Database),
	)

	ctx := context.Background()

	store, err := dbMongo.NewStore(ctx, dbMongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logger.Fatal("Failed to create document store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Mongo.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Document store not ready", zap.Error(err))
	}
	logger.Info("Connected to document store")

	// Transcript store is optional: without it the stylist still works,
	// it just stops recording sessions.
	var transcriptLog chiTransport.TranscriptLog
	var transcriptPinger healthuc.Pinger
	if cfg.TranscriptsEnabled() {
		tstore, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Transcripts.Addrs,
			Username: cfg.Transcripts.Username,
			Password: cfg.Transcripts.Password,
			DB:       cfg.Transcripts.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create transcript store", zap.Error(err))
		}
		defer tstore.Close()

		ttl := time.Duration(cfg.Transcripts.TTLHours) * time.Hour
		transcriptLog = transcriptrepo.New(tstore, ttl)
		transcriptPinger = tstore
		logger.Info("Transcript log enabled",
			zap.Strings("addrs", cfg.Transcripts.Addrs),
			zap.Duration("ttl", ttl),
		)
	}

	// Register catalog metrics explicitly (no init())
	metrics.RegisterCatalogMetrics()

	productRepo := productrepo.New(store)
	collectionRepo := collectionrepo.New(store)

	productSvc := productuc.New(productRepo)
	collectionSvc := collectionuc.New(collectionRepo)
	stylistSvc := stylistuc.New(productRepo)
	healthSvc := healthuc.New(store, transcriptPinger)

	server := chiTransport.NewServer(
		productSvc, collectionSvc, stylistSvc, transcriptLog, healthSvc, logger,
	).WithDefaultLimit(cfg.Catalog.DefaultLimit)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.WithContext(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
