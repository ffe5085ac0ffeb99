package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/observability/metrics"
	"github.com/SscSPs/finance_dashboard/internal/utils/export"
)

const maxScopeLength = 128

// dashboardService implements the DashboardSvc interface
type dashboardService struct {
	BaseService
	fetcher  portssvc.SnapshotFetcher
	policy   finance.Policy
	clock    func() time.Time
	location *time.Location

	cacheSize int
	cacheTTL  time.Duration
	cache     *DashboardCache
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithClock sets the time source. The reporting location is applied on top of it.
func WithClock(clock func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.clock = clock
	}
}

// WithPolicy sets the business thresholds used by the aggregation.
func WithPolicy(policy finance.Policy) DashboardServiceOption {
	return func(s *dashboardService) {
		s.policy = policy
	}
}

// WithCache sizes the dashboard cache.
func WithCache(size int, ttl time.Duration) DashboardServiceOption {
	return func(s *dashboardService) {
		s.cacheSize = size
		s.cacheTTL = ttl
	}
}

// WithReportingLocation sets the time zone months and days are counted in.
func WithReportingLocation(loc *time.Location) DashboardServiceOption {
	return func(s *dashboardService) {
		s.location = loc
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(fetcher portssvc.SnapshotFetcher, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		fetcher:   fetcher,
		policy:    finance.DefaultPolicy(),
		clock:     time.Now,
		location:  time.UTC,
		cacheSize: 256,
		cacheTTL:  2 * time.Minute,
	}
	for _, option := range options {
		option(svc)
	}
	svc.cache = NewDashboardCache(svc.compute, svc.cacheSize, svc.cacheTTL, svc.clock)
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) now() time.Time {
	return s.clock().In(s.location)
}

// compute runs one full aggregation cycle: fetch, then derive every view.
func (s *dashboardService) compute(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	start := time.Now()
	snapshot, err := s.fetcher.Fetch(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch finance records for scope %s: %w", scope, err)
	}

	views := finance.Aggregate(snapshot, s.now(), s.policy)
	metrics.ObserveAggregate(time.Since(start))

	s.LogInfo(ctx, "Dashboard computed",
		slog.String("scope", scope.String()),
		slog.Int("alerts", len(views.Alerts)),
		slog.Int("degraded_sources", len(views.DegradedSources)),
		slog.Duration("duration", time.Since(start)))
	return &views, nil
}

func validateScope(scope domain.Scope) error {
	if len(scope) > maxScopeLength {
		return fmt.Errorf("%w: scope longer than %d characters", apperrors.ErrValidation, maxScopeLength)
	}
	if strings.IndexFunc(string(scope), unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: scope contains control characters", apperrors.ErrValidation)
	}
	return nil
}

// GetDashboard returns the cached views for scope, computing them on a miss.
func (s *dashboardService) GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	views, err := s.cache.GetOrCompute(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to get dashboard", slog.String("scope", scope.String()))
		return nil, err
	}
	return views, nil
}

// RefreshDashboard recomputes the views for scope, superseding any refresh still in flight.
func (s *dashboardService) RefreshDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	views, err := s.cache.Refresh(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh dashboard", slog.String("scope", scope.String()))
		return nil, err
	}
	s.LogInfo(ctx, "Dashboard refreshed", slog.String("scope", scope.String()))
	return views, nil
}

// InvalidateScope drops cached views after records of scope changed.
func (s *dashboardService) InvalidateScope(ctx context.Context, scope domain.Scope) error {
	if err := validateScope(scope); err != nil {
		return err
	}
	s.cache.Invalidate(scope)
	s.LogInfo(ctx, "Dashboard cache invalidated", slog.String("scope", scope.String()))
	return nil
}

// ExportDashboardXLSX renders the current dashboard of scope as a workbook.
func (s *dashboardService) ExportDashboardXLSX(ctx context.Context, scope domain.Scope) ([]byte, error) {
	views, err := s.GetDashboard(ctx, scope)
	if err != nil {
		return nil, err
	}
	raw, err := export.BuildDashboardWorkbook(views, s.policy.Currency)
	metrics.ObserveExport("xlsx", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard workbook", slog.String("scope", scope.String()))
		return nil, fmt.Errorf("failed to build dashboard workbook: %w", err)
	}
	return raw, nil
}

// ExportTransactionsCSV writes the ledger transactions behind the current dashboard of scope.
func (s *dashboardService) ExportTransactionsCSV(ctx context.Context, scope domain.Scope, w io.Writer) error {
	views, err := s.GetDashboard(ctx, scope)
	if err != nil {
		return err
	}
	err = export.WriteTransactionsCSV(w, views.LedgerTransactions, s.location)
	metrics.ObserveExport("csv", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to write transactions csv", slog.String("scope", scope.String()))
		return fmt.Errorf("failed to write transactions csv: %w", err)
	}
	return nil
}
