package services

import (
	"context"
	"io"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// SnapshotFetcher assembles one consistent snapshot of the record sources for a scope.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, scope domain.Scope) (*domain.Snapshot, error)
}

// DashboardReaderSvc serves dashboard views.
type DashboardReaderSvc interface {
	// GetDashboard returns the cached views for scope, computing them on a miss.
	GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error)

	// RefreshDashboard drops cached views for scope and recomputes them.
	// A refresh overtaken by a newer one for the same scope fails with apperrors.ErrSuperseded.
	RefreshDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error)
}

// DashboardInvalidatorSvc is called by collaborators after they mutate records.
type DashboardInvalidatorSvc interface {
	InvalidateScope(ctx context.Context, scope domain.Scope) error
}

// DashboardExporterSvc renders dashboard data for download.
type DashboardExporterSvc interface {
	ExportDashboardXLSX(ctx context.Context, scope domain.Scope) ([]byte, error)
	ExportTransactionsCSV(ctx context.Context, scope domain.Scope, w io.Writer) error
}

// DashboardSvc is the full dashboard facade used by the handlers.
type DashboardSvc interface {
	DashboardReaderSvc
	DashboardInvalidatorSvc
	DashboardExporterSvc
}
