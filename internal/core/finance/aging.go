package finance

import (
	"sort"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildReceivablesAging buckets outstanding receivables by days past due.
// Invoices not yet due, or without a due date, count as current.
func BuildReceivablesAging(invoices []domain.ClientInvoice, now time.Time) domain.ReceivablesAging {
	aging := domain.ReceivablesAging{}
	for _, inv := range invoices {
		if !inv.IsReceivable() {
			continue
		}
		amount := inv.GrossTotal()
		days := 0
		if inv.DueDate != nil {
			days = DaysBetween(now, *inv.DueDate)
		}
		switch {
		case days <= 0:
			aging.Current = aging.Current.Add(amount)
		case days <= 30:
			aging.Days1To30 = aging.Days1To30.Add(amount)
		case days <= 60:
			aging.Days31To60 = aging.Days31To60.Add(amount)
		case days <= 90:
			aging.Days61To90 = aging.Days61To90.Add(amount)
		default:
			aging.Over90 = aging.Over90.Add(amount)
		}
	}
	return aging
}

// TopDebtors ranks clients by outstanding receivables.
func TopDebtors(invoices []domain.ClientInvoice, now time.Time, limit int, unattributedLabel string) []domain.DebtorExposure {
	byClient := make(map[string]*domain.DebtorExposure)
	for _, inv := range invoices {
		if !inv.IsReceivable() {
			continue
		}
		name := inv.ClientName
		if name == "" {
			name = unattributedLabel
		}
		exposure, ok := byClient[name]
		if !ok {
			exposure = &domain.DebtorExposure{ClientName: name, Amount: decimal.Zero, Overdue: decimal.Zero}
			byClient[name] = exposure
		}
		amount := inv.GrossTotal()
		exposure.Amount = exposure.Amount.Add(amount)
		exposure.Count++
		if inv.DueDate != nil && DaysBetween(now, *inv.DueDate) > 0 {
			exposure.Overdue = exposure.Overdue.Add(amount)
		}
	}

	debtors := make([]domain.DebtorExposure, 0, len(byClient))
	for _, exposure := range byClient {
		debtors = append(debtors, *exposure)
	}
	sort.Slice(debtors, func(i, j int) bool {
		if cmp := debtors[i].Amount.Cmp(debtors[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return debtors[i].ClientName < debtors[j].ClientName
	})
	if limit >= 0 && len(debtors) > limit {
		debtors = debtors[:limit]
	}
	return debtors
}
