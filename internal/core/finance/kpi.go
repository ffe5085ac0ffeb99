package finance

import (
	"math"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeKPIs derives the headline metrics from a snapshot.
func ComputeKPIs(snapshot *domain.Snapshot, now time.Time) domain.KPIResult {
	current := CurrentMonth(now)
	previous := PreviousMonth(now)

	kpi := domain.KPIResult{
		Treasury:            Treasury(snapshot.CashAccounts),
		Receivables:         Receivables(snapshot.ClientInvoices),
		Payables:            Payables(snapshot.SupplierInvoices),
		MonthlyRevenue:      PaidRevenueIn(snapshot.ClientInvoices, current),
		PrevMonthlyRevenue:  PaidRevenueIn(snapshot.ClientInvoices, previous),
		MonthlyExpenses:     ExpensesIn(snapshot.Expenses, current),
		PrevMonthlyExpenses: ExpensesIn(snapshot.Expenses, previous),
	}
	kpi.NetMargin = kpi.MonthlyRevenue.Sub(kpi.MonthlyExpenses)
	kpi.PrevNetMargin = kpi.PrevMonthlyRevenue.Sub(kpi.PrevMonthlyExpenses)

	kpi.RevenueTrend = ComputeTrend(kpi.MonthlyRevenue, kpi.PrevMonthlyRevenue)
	kpi.ExpensesTrend = ComputeTrend(kpi.MonthlyExpenses, kpi.PrevMonthlyExpenses)
	kpi.MarginTrend = ComputeTrend(kpi.NetMargin, kpi.PrevNetMargin)

	if !kpi.MonthlyExpenses.IsZero() {
		kpi.RunwayMonths = decimal.NewNullDecimal(kpi.Treasury.DivRound(kpi.MonthlyExpenses, 2))
	}
	return kpi
}

// ClassifyRunway rates a runway against the policy thresholds.
// Without a burn there is nothing to run out of, so an absent runway is good.
func ClassifyRunway(runway decimal.NullDecimal, policy Policy) domain.RunwayStatus {
	switch {
	case !runway.Valid, runway.Decimal.GreaterThan(policy.RunwayWarningMonths):
		return domain.RunwayGood
	case runway.Decimal.GreaterThan(policy.RunwayDangerMonths):
		return domain.RunwayWarning
	default:
		return domain.RunwayDanger
	}
}

// ComputeTrend is (current - previous) / |previous| * 100, or NoBaseline when previous is zero.
func ComputeTrend(current, previous decimal.Decimal) domain.Trend {
	if previous.IsZero() {
		return domain.NoBaseline()
	}
	pct, _ := current.Sub(previous).Div(previous.Abs()).Mul(hundred).Float64()
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return domain.NoBaseline()
	}
	return domain.NewTrend(pct)
}

// Treasury sums all cash account balances, overdrafts included.
func Treasury(accounts []domain.CashAccount) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// Receivables sums the gross totals of sent and overdue client invoices.
func Receivables(invoices []domain.ClientInvoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.IsReceivable() {
			total = total.Add(inv.GrossTotal())
		}
	}
	return total
}

// Payables sums pending and approved supplier invoices.
func Payables(invoices []domain.SupplierInvoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.IsPayable() {
			total = total.Add(inv.Amount)
		}
	}
	return total
}

// PaidRevenueIn sums paid client invoices whose revenue date falls in the month.
func PaidRevenueIn(invoices []domain.ClientInvoice, month domain.MonthRange) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == domain.ClientInvoicePaid && month.Contains(inv.RevenueDate()) {
			total = total.Add(inv.GrossTotal())
		}
	}
	return total
}

// InvoicedRevenueIn sums non-cancelled client invoices whose revenue date falls in the month.
func InvoicedRevenueIn(invoices []domain.ClientInvoice, month domain.MonthRange) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != domain.ClientInvoiceCancelled && month.Contains(inv.RevenueDate()) {
			total = total.Add(inv.GrossTotal())
		}
	}
	return total
}

// ExpensesIn sums general expenses created in the month.
func ExpensesIn(expenses []domain.Expense, month domain.MonthRange) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if month.Contains(exp.CreatedDate) {
			total = total.Add(exp.Amount)
		}
	}
	return total
}

// SupplierSpendIn sums supplier invoices created in the month, whatever their status.
func SupplierSpendIn(invoices []domain.SupplierInvoice, month domain.MonthRange) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if month.Contains(inv.CreatedDate) {
			total = total.Add(inv.Amount)
		}
	}
	return total
}
