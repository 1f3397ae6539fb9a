package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/adapters/cache"
	"github.com/SscSPs/fx_dashboard/internal/adapters/frankfurter"
	"github.com/SscSPs/fx_dashboard/internal/core/services"
	"github.com/SscSPs/fx_dashboard/internal/dto"
	"github.com/SscSPs/fx_dashboard/internal/handlers"
	"github.com/SscSPs/fx_dashboard/internal/middleware"
	"github.com/SscSPs/fx_dashboard/internal/platform/config"
	"github.com/SscSPs/fx_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_dashboard/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title FX Dashboard API
// @version 1.0
// @description Exchange rates, chart and table projections for the FX dashboard.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	upstream, err := frankfurter.New(cfg.FrankfurterURL,
		frankfurter.WithTimeout(cfg.FrankfurterTimeout),
		frankfurter.WithRateLimit(cfg.FrankfurterRPS, max(1, int(cfg.FrankfurterRPS))),
		frankfurter.WithRetries(cfg.FrankfurterRetries, 200*time.Millisecond),
		frankfurter.WithLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to create Frankfurter client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := newCacheStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to create response cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing response cache", slog.String("error", cerr.Error()))
		}
	}()
	provider := cache.NewCachedProvider(upstream, store, cfg.CacheTTL, logger)

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, provider, logger)
	defer serviceContainer.Dashboard.Close()

	// Start the dashboard on its default window so the first read has data.
	if _, err := serviceContainer.Dashboard.SetParams(context.Background(), dto.DashboardParamsRequest{}); err != nil {
		logger.Error("Failed to set initial dashboard params", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.RequestMetrics(),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// newCacheStore selects Redis when a URL is configured and the in-memory store otherwise.
func newCacheStore(cfg *config.Config, logger *slog.Logger) (cache.Store, error) {
	if cfg.RedisURL == "" {
		logger.Info("Using in-memory response cache")
		return cache.NewMemoryStore(time.Minute), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := cache.NewRedisStore(ctx, cfg.RedisURL, "fx_dashboard:")
	if err != nil {
		return nil, err
	}
	logger.Info("Using Redis response cache")
	return store, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPut, http.MethodOptions}
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
