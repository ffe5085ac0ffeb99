// Package finance derives the consolidated finance dashboard from a snapshot of source records.
//
// Every function is pure: it reads the snapshot, never mutates it, and takes "now" explicitly
// so that month bucketing and day counts are deterministic.
package finance

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Aggregate computes every dashboard view from one snapshot.
// The builders run concurrently over the same read-only snapshot and write to disjoint fields.
func Aggregate(snapshot *domain.Snapshot, now time.Time, policy Policy) domain.DashboardViews {
	views := domain.DashboardViews{
		Scope:              snapshot.Scope,
		AsOf:               now,
		DegradedSources:    snapshot.DegradedSources,
		LedgerTransactions: snapshot.LedgerTransactions,
	}

	var g errgroup.Group
	g.Go(func() error {
		views.KPIs = ComputeKPIs(snapshot, now)
		views.KPIs.RunwayStatus = ClassifyRunway(views.KPIs.RunwayMonths, policy)
		return nil
	})
	g.Go(func() error {
		views.CashFlow = BuildCashFlowSeries(snapshot, now)
		return nil
	})
	g.Go(func() error {
		views.ProfitAndLoss = BuildProfitAndLossSeries(snapshot, now)
		return nil
	})
	g.Go(func() error {
		views.RevenueBreakdown = BuildRevenueBreakdown(snapshot.ClientInvoices, policy.UnattributedLabel)
		return nil
	})
	g.Go(func() error {
		views.Alerts = ClassifyAlerts(snapshot, now, policy)
		return nil
	})
	g.Go(func() error {
		views.RecentTransactions = SelectRecentTransactions(snapshot.LedgerTransactions, policy.RecentTransactionsLimit)
		views.OverdueInvoices = SelectOverdueInvoices(snapshot.ClientInvoices, now, policy.OverdueInvoicesLimit)
		return nil
	})
	g.Go(func() error {
		views.ReceivablesAging = BuildReceivablesAging(snapshot.ClientInvoices, now)
		views.TopDebtors = TopDebtors(snapshot.ClientInvoices, now, policy.TopDebtorsLimit, policy.UnattributedLabel)
		return nil
	})
	_ = g.Wait() // builders never fail

	return views
}
