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
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/insightwires/newsmeta/internal/cache"
	"github.com/insightwires/newsmeta/internal/config"
	"github.com/insightwires/newsmeta/internal/db"
	logpkg "github.com/insightwires/newsmeta/internal/logger"
	"github.com/insightwires/newsmeta/internal/metrics"
	insightrepo "github.com/insightwires/newsmeta/internal/repository/insight"
	taxonomyrepo "github.com/insightwires/newsmeta/internal/repository/taxonomy"
	chiTransport "github.com/insightwires/newsmeta/internal/transport/chi"
	healthuc "github.com/insightwires/newsmeta/internal/usecase/health"
	insightuc "github.com/insightwires/newsmeta/internal/usecase/insight"
	taxonomyuc "github.com/insightwires/newsmeta/internal/usecase/taxonomy"
	"github.com/insightwires/newsmeta/internal/version"
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

	logger.Info("Starting newsmeta API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	gdb, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close(gdb) }()

	ctx := context.Background()
	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := db.WaitForReady(ctx, gdb, readiness); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(gdb); err != nil {
			logger.Fatal("Migration failed", zap.Error(err))
		}
		logger.Info("Schema migrated")
	}

	// Register cache/query metrics explicitly (no init())
	metrics.RegisterCacheMetrics()

	respCache, err := buildCache(cfg.Cache)
	if err != nil {
		logger.Fatal("Failed to create response cache", zap.Error(err))
	}
	if respCache != nil {
		defer respCache.Close()
		logger.Info("Response cache enabled",
			zap.String("driver", cfg.Cache.Driver),
			zap.Int("ttl_sec", cfg.Cache.TTLSec),
		)
	}

	taxRepo := taxonomyrepo.New(cfg.Taxonomy.Path)

	insightSvc := insightuc.New(
		insightrepo.New(gdb),
		cfg.Pagination.DefaultLimit,
		cfg.Pagination.MaxLimit,
	)
	taxonomySvc := taxonomyuc.New(taxRepo)
	healthSvc := healthuc.New(&dbPinger{gdb: gdb}, taxRepo)

	server := chiTransport.NewServer(insightSvc, taxonomySvc, healthSvc, respCache, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Compress(5))
	r.Use(wideEventMiddleware(logger))
	if cfg.RateLimit.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	}
	r.Use(chiTransport.APIKeyMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildCache creates the response cache selected by config; nil means
// caching is disabled.
func buildCache(cfg config.CacheConfig) (cache.Cache, error) {
	ttl := time.Duration(cfg.TTLSec) * time.Second
	switch cfg.Driver {
	case "none":
		return nil, nil
	case "memory":
		return cache.NewMemory(ttl, cfg.MaxEntries), nil
	case "redis":
		return cache.NewRedis(cache.RedisConfig{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
			TTL:      ttl,
		})
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

// dbPinger adapts the gorm handle to the health check contract.
type dbPinger struct {
	gdb *gorm.DB
}

func (p *dbPinger) Ping(ctx context.Context) error {
	return db.Ping(ctx, p.gdb)
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

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
