package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/adapters/collections"
	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/handlers"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/observability/metrics"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/SscSPs/finance_dashboard/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Finance Dashboard API
// @version 1.0
// @description Consolidated finance dashboard: KPIs, trends, alerts and exports across business units.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ServiceToken
// @in header
// @name X-Service-Token
// @description Shared secret of internal services.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	policy := finance.DefaultPolicy()
	if cfg.FinancePolicyFile != "" {
		policy, err = finance.LoadPolicyFile(cfg.FinancePolicyFile)
		if err != nil {
			logger.Error("Failed to load finance policy", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Finance policy loaded", slog.String("file", cfg.FinancePolicyFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources, closeSources, err := initSources(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record sources", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSources()

	metrics.Init()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	refreshLimiter, err := middleware.NewMemoryLimiter(cfg.RefreshRateLimit)
	if err != nil {
		logger.Error("Failed to create refresh rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, sources, policy)

	if cfg.CacheWarmSchedule != "" {
		warmer := services.NewCacheWarmer(serviceContainer.Dashboard, cfg.CacheWarmScopes, cfg.FetchTimeout*2, logger)
		if err := warmer.Schedule(cfg.CacheWarmSchedule); err != nil {
			logger.Error("Failed to schedule cache warming", slog.String("error", err.Error()))
			os.Exit(1)
		}
		warmer.Start()
		defer warmer.Stop()
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, refreshLimiter, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("data_source", cfg.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// initSources builds the record readers selected by DATA_SOURCE. The returned func releases them.
func initSources(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SourceProvider, func(), error) {
	switch cfg.DataSource {
	case config.DataSourcePgsql:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir, logger); err != nil {
			return portsrepo.SourceProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
		if err != nil {
			return portsrepo.SourceProvider{}, nil, err
		}
		return pgsql.NewSourceProvider(dbPool), func() { database.ClosePgxPool(dbPool, logger) }, nil
	default:
		client := collections.NewClient(cfg.CollectionsBaseURL, cfg.CollectionsToken,
			collections.WithLocation(cfg.ReportingLocation))
		logger.Info("Reading finance records from the collection service", slog.String("base_url", cfg.CollectionsBaseURL))
		return collections.NewSourceProvider(client), func() {}, nil
	}
}
