package finance

import (
	"sort"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildRevenueBreakdown groups non-cancelled client invoices by owning entity, largest first.
// Invoices without an owner are grouped under unattributedLabel.
func BuildRevenueBreakdown(invoices []domain.ClientInvoice, unattributedLabel string) []domain.BreakdownEntry {
	totals := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		if inv.Status == domain.ClientInvoiceCancelled {
			continue
		}
		key := inv.Owner
		if key == "" {
			key = unattributedLabel
		}
		totals[key] = totals[key].Add(inv.GrossTotal())
	}

	entries := make([]domain.BreakdownEntry, 0, len(totals))
	for name, value := range totals {
		entries = append(entries, domain.BreakdownEntry{Name: name, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if cmp := entries[i].Value.Cmp(entries[j].Value); cmp != 0 {
			return cmp > 0
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// NonCancelledRevenue is the unfiltered-by-owner total the breakdown must add up to.
func NonCancelledRevenue(invoices []domain.ClientInvoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != domain.ClientInvoiceCancelled {
			total = total.Add(inv.GrossTotal())
		}
	}
	return total
}
