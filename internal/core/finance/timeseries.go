package finance

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// BuildCashFlowSeries returns the trailing 12 months, oldest first, of invoiced revenue against general expenses.
func BuildCashFlowSeries(snapshot *domain.Snapshot, now time.Time) []domain.TimeSeriesPoint {
	points := make([]domain.TimeSeriesPoint, 0, SeriesMonths)
	for offset := SeriesMonths - 1; offset >= 0; offset-- {
		month := MonthRangeFor(now, offset)
		revenue := InvoicedRevenueIn(snapshot.ClientInvoices, month)
		expense := ExpensesIn(snapshot.Expenses, month)
		points = append(points, domain.TimeSeriesPoint{
			Label:   MonthLabel(month),
			Period:  month,
			Revenue: revenue,
			Expense: expense,
			Net:     revenue.Sub(expense),
		})
	}
	return points
}

// BuildProfitAndLossSeries returns the trailing 12 months, oldest first, of invoiced revenue
// against supplier invoices plus general expenses. Net is the resulting margin.
func BuildProfitAndLossSeries(snapshot *domain.Snapshot, now time.Time) []domain.TimeSeriesPoint {
	points := make([]domain.TimeSeriesPoint, 0, SeriesMonths)
	for offset := SeriesMonths - 1; offset >= 0; offset-- {
		month := MonthRangeFor(now, offset)
		revenue := InvoicedRevenueIn(snapshot.ClientInvoices, month)
		expense := SupplierSpendIn(snapshot.SupplierInvoices, month).Add(ExpensesIn(snapshot.Expenses, month))
		points = append(points, domain.TimeSeriesPoint{
			Label:   MonthLabel(month),
			Period:  month,
			Revenue: revenue,
			Expense: expense,
			Net:     revenue.Sub(expense),
		})
	}
	return points
}
