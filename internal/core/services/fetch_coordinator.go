package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/observability/metrics"
	"golang.org/x/sync/errgroup"
)

// sourceResult is the tagged outcome of one branch of the fan-out.
type sourceResult struct {
	name     domain.SourceName
	err      error
	duration time.Duration
}

// FetchCoordinator reads the five record sources concurrently and joins them into one snapshot.
type FetchCoordinator struct {
	BaseService
	sources portsrepo.SourceProvider
	limits  domain.FetchLimits
	timeout time.Duration
	clock   func() time.Time
}

// FetchCoordinatorOption configures a FetchCoordinator.
type FetchCoordinatorOption func(*FetchCoordinator)

// WithFetchTimeout bounds every individual source read.
func WithFetchTimeout(timeout time.Duration) FetchCoordinatorOption {
	return func(f *FetchCoordinator) {
		f.timeout = timeout
	}
}

// WithFetchLimits overrides the per-source record caps.
func WithFetchLimits(limits domain.FetchLimits) FetchCoordinatorOption {
	return func(f *FetchCoordinator) {
		f.limits = limits
	}
}

// WithFetchClock sets the clock used to stamp snapshots.
func WithFetchClock(clock func() time.Time) FetchCoordinatorOption {
	return func(f *FetchCoordinator) {
		f.clock = clock
	}
}

// NewFetchCoordinator creates a coordinator over the given sources.
func NewFetchCoordinator(sources portsrepo.SourceProvider, options ...FetchCoordinatorOption) *FetchCoordinator {
	f := &FetchCoordinator{
		sources: sources,
		limits:  domain.DefaultFetchLimits(),
		timeout: 10 * time.Second,
		clock:   time.Now,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

var _ portssvc.SnapshotFetcher = (*FetchCoordinator)(nil)

// Fetch dispatches the five reads concurrently. A failed source is replaced by an empty list
// and recorded in Snapshot.DegradedSources; only when every source fails is an error returned,
// wrapping apperrors.ErrAllSourcesFailed and each cause.
func (f *FetchCoordinator) Fetch(ctx context.Context, scope domain.Scope) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{Scope: scope, AsOf: f.clock()}
	results := make([]sourceResult, len(domain.AllSources))

	var g errgroup.Group
	g.Go(func() error {
		results[0] = fetchSource(ctx, f.timeout, domain.SourceCashAccounts, &snapshot.CashAccounts,
			func(ctx context.Context) ([]domain.CashAccount, error) {
				return f.sources.CashAccounts.ListCashAccounts(ctx, scope, f.limits.CashAccounts)
			})
		return nil
	})
	g.Go(func() error {
		results[1] = fetchSource(ctx, f.timeout, domain.SourceClientInvoices, &snapshot.ClientInvoices,
			func(ctx context.Context) ([]domain.ClientInvoice, error) {
				return f.sources.ClientInvoices.ListClientInvoices(ctx, scope, f.limits.ClientInvoices)
			})
		return nil
	})
	g.Go(func() error {
		results[2] = fetchSource(ctx, f.timeout, domain.SourceSupplierInvoices, &snapshot.SupplierInvoices,
			func(ctx context.Context) ([]domain.SupplierInvoice, error) {
				return f.sources.SupplierInvoices.ListSupplierInvoices(ctx, scope, f.limits.SupplierInvoices)
			})
		return nil
	})
	g.Go(func() error {
		results[3] = fetchSource(ctx, f.timeout, domain.SourceExpenses, &snapshot.Expenses,
			func(ctx context.Context) ([]domain.Expense, error) {
				return f.sources.Expenses.ListExpenses(ctx, scope, f.limits.Expenses)
			})
		return nil
	})
	g.Go(func() error {
		results[4] = fetchSource(ctx, f.timeout, domain.SourceLedgerTransactions, &snapshot.LedgerTransactions,
			func(ctx context.Context) ([]domain.LedgerTransaction, error) {
				return f.sources.LedgerTransactions.ListLedgerTransactions(ctx, scope, f.limits.LedgerTransactions)
			})
		return nil
	})
	_ = g.Wait() // branches report through results

	if err := ctx.Err(); err != nil {
		f.LogDebug(ctx, "Snapshot abandoned, caller context done", slog.String("scope", scope.String()))
		return nil, err
	}

	var causes []error
	for _, res := range results {
		metrics.ObserveSourceFetch(string(res.name), res.err, res.duration)
		if res.err == nil {
			continue
		}
		causes = append(causes, fmt.Errorf("%s: %w", res.name, res.err))
		snapshot.DegradedSources = append(snapshot.DegradedSources, res.name)
		metrics.IncSnapshotDegraded(string(res.name))
		f.LogWarn(ctx, "Record source failed, continuing with an empty list",
			slog.String("source", string(res.name)),
			slog.String("scope", scope.String()),
			slog.String("error", res.err.Error()),
			slog.Duration("duration", res.duration))
	}

	if len(causes) == len(results) {
		err := fmt.Errorf("%w: %w", apperrors.ErrAllSourcesFailed, errors.Join(causes...))
		f.LogError(ctx, err, "Every record source failed", slog.String("scope", scope.String()))
		return nil, err
	}

	f.LogDebug(ctx, "Snapshot assembled",
		slog.String("scope", scope.String()),
		slog.Int("cash_accounts", len(snapshot.CashAccounts)),
		slog.Int("client_invoices", len(snapshot.ClientInvoices)),
		slog.Int("supplier_invoices", len(snapshot.SupplierInvoices)),
		slog.Int("expenses", len(snapshot.Expenses)),
		slog.Int("ledger_transactions", len(snapshot.LedgerTransactions)),
		slog.Int("degraded", len(snapshot.DegradedSources)))
	return snapshot, nil
}

// fetchSource runs one read under its own timeout and always leaves a non-nil list in dst.
// A panicking reader is reported as a failure of that source only.
func fetchSource[T any](ctx context.Context, timeout time.Duration, name domain.SourceName, dst *[]T, read func(context.Context) ([]T, error)) (res sourceResult) {
	res.name = name
	start := time.Now()
	*dst = []T{}

	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("panic while reading source: %v", r)
			*dst = []T{}
		}
		res.duration = time.Since(start)
	}()

	readCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	records, err := read(readCtx)
	if err != nil {
		res.err = err
		return res
	}
	if records != nil {
		*dst = records
	}
	return res
}
