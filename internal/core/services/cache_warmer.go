package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/robfig/cron/v3"
)

// CacheWarmer periodically pre-computes dashboards so the first reader after expiry does not wait.
type CacheWarmer struct {
	cron      *cron.Cron
	dashboard portssvc.DashboardReaderSvc
	scopes    []domain.Scope
	timeout   time.Duration
	logger    *slog.Logger
}

// NewCacheWarmer creates a warmer for the given scope keys ("all" is the unfiltered scope).
func NewCacheWarmer(dashboard portssvc.DashboardReaderSvc, scopes []string, timeout time.Duration, logger *slog.Logger) *CacheWarmer {
	parsed := make([]domain.Scope, 0, len(scopes))
	seen := make(map[domain.Scope]bool)
	for _, raw := range scopes {
		scope := domain.ParseScope(raw)
		if seen[scope] {
			continue
		}
		seen[scope] = true
		parsed = append(parsed, scope)
	}
	if len(parsed) == 0 {
		parsed = append(parsed, domain.AllScopes)
	}
	return &CacheWarmer{
		cron:      cron.New(),
		dashboard: dashboard,
		scopes:    parsed,
		timeout:   timeout,
		logger:    logger.With(slog.String("component", "cache_warmer")),
	}
}

// Schedule registers the warm-up on a standard five-field cron expression or a descriptor such as "@every 1m".
func (w *CacheWarmer) Schedule(spec string) error {
	if _, err := w.cron.AddFunc(spec, func() { w.WarmNow(context.Background()) }); err != nil {
		return fmt.Errorf("invalid cache warm schedule %q: %w", spec, err)
	}
	w.logger.Info("Cache warm job registered", slog.String("schedule", spec), slog.Int("scopes", len(w.scopes)))
	return nil
}

// WarmNow computes every configured scope once. Failures are logged and do not stop the run.
func (w *CacheWarmer) WarmNow(ctx context.Context) int {
	ctx = middleware.WithLogger(ctx, w.logger)
	warmed := 0
	for _, scope := range w.scopes {
		scopeCtx, cancel := context.WithTimeout(ctx, w.timeout)
		_, err := w.dashboard.GetDashboard(scopeCtx, scope)
		cancel()
		if err != nil {
			w.logger.Warn("Cache warm failed", slog.String("scope", scope.String()), slog.String("error", err.Error()))
			continue
		}
		warmed++
	}
	w.logger.Debug("Cache warm run finished", slog.Int("warmed", warmed), slog.Int("scopes", len(w.scopes)))
	return warmed
}

// Start starts the scheduler
func (w *CacheWarmer) Start() {
	w.cron.Start()
}

// Stop stops the scheduler and waits for a running warm-up to finish
func (w *CacheWarmer) Stop() {
	<-w.cron.Stop().Done()
}
