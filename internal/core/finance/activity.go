package finance

import (
	"sort"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// SelectRecentTransactions returns up to limit ledger transactions, newest first.
// Undated transactions sort after dated ones.
func SelectRecentTransactions(txns []domain.LedgerTransaction, limit int) []domain.RecentTransaction {
	sorted := make([]domain.LedgerTransaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]domain.RecentTransaction, len(sorted))
	for i, txn := range sorted {
		recent[i] = domain.RecentTransaction{
			LedgerTransaction: txn,
			Inflow:            txn.Amount.IsPositive(),
		}
	}
	return recent
}

// SelectOverdueInvoices returns up to limit overdue client invoices, most overdue first.
func SelectOverdueInvoices(invoices []domain.ClientInvoice, now time.Time, limit int) []domain.OverdueInvoice {
	overdue := make([]domain.OverdueInvoice, 0)
	for _, inv := range invoices {
		if inv.Status != domain.ClientInvoiceOverdue || inv.DueDate == nil {
			continue
		}
		overdue = append(overdue, domain.OverdueInvoice{
			ClientInvoice: inv,
			DaysOverdue:   DaysBetween(now, *inv.DueDate),
		})
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DaysOverdue > overdue[j].DaysOverdue
	})
	if limit >= 0 && len(overdue) > limit {
		overdue = overdue[:limit]
	}
	return overdue
}
