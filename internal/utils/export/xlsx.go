package export

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	cashFlowSheet  = "Cash flow"
	pnlSheet       = "P&L"
	breakdownSheet = "Revenue by entity"
	alertsSheet    = "Alerts"
	agingSheet     = "Receivables aging"
)

// sheetWriter appends rows to one sheet and remembers the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) append(values ...any) {
	if w.err != nil {
		return
	}
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(w.sheet, cell, &values)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func trendCell(t domain.Trend) any {
	if pct, ok := t.Percent(); ok {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return "n/a"
}

// BuildDashboardWorkbook renders the dashboard views into an XLSX workbook.
func BuildDashboardWorkbook(views *domain.DashboardViews, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	for _, name := range []string{cashFlowSheet, pnlSheet, breakdownSheet, alertsSheet, agingSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	writers := []*sheetWriter{
		writeSummary(f, views, currency),
		writeSeries(f, cashFlowSheet, views.CashFlow),
		writeSeries(f, pnlSheet, views.ProfitAndLoss),
		writeBreakdown(f, views.RevenueBreakdown),
		writeAlerts(f, views.Alerts),
		writeAging(f, views.ReceivablesAging),
	}
	for _, w := range writers {
		if w.err != nil {
			return nil, fmt.Errorf("failed to write sheet %s: %w", w.sheet, w.err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, views *domain.DashboardViews, currency string) *sheetWriter {
	w := &sheetWriter{f: f, sheet: summarySheet}
	k := views.KPIs
	w.append("Consolidated finance dashboard")
	w.append("Scope", views.Scope.String())
	w.append("As of", views.AsOf.Format("2006-01-02 15:04 MST"))
	w.append("Currency", currency)
	w.append()
	w.append("Metric", "Value", "Previous month", "Trend")
	w.append("Treasury", money(k.Treasury))
	w.append("Receivables", money(k.Receivables))
	w.append("Payables", money(k.Payables))
	w.append("Monthly revenue", money(k.MonthlyRevenue), money(k.PrevMonthlyRevenue), trendCell(k.RevenueTrend))
	w.append("Monthly expenses", money(k.MonthlyExpenses), money(k.PrevMonthlyExpenses), trendCell(k.ExpensesTrend))
	w.append("Net margin", money(k.NetMargin), money(k.PrevNetMargin), trendCell(k.MarginTrend))
	if k.RunwayMonths.Valid {
		w.append("Runway (months)", k.RunwayMonths.Decimal.InexactFloat64(), "", string(k.RunwayStatus))
	}
	if len(views.DegradedSources) > 0 {
		w.append()
		for _, source := range views.DegradedSources {
			w.append("Unavailable source", string(source))
		}
	}
	return w
}

func writeSeries(f *excelize.File, sheet string, points []domain.TimeSeriesPoint) *sheetWriter {
	w := &sheetWriter{f: f, sheet: sheet}
	w.append("Month", "Revenue", "Expense", "Net")
	for _, p := range points {
		w.append(p.Label, money(p.Revenue), money(p.Expense), money(p.Net))
	}
	return w
}

func writeBreakdown(f *excelize.File, entries []domain.BreakdownEntry) *sheetWriter {
	w := &sheetWriter{f: f, sheet: breakdownSheet}
	w.append("Entity", "Revenue")
	for _, e := range entries {
		w.append(e.Name, money(e.Value))
	}
	return w
}

func writeAlerts(f *excelize.File, alerts []domain.Alert) *sheetWriter {
	w := &sheetWriter{f: f, sheet: alertsSheet}
	w.append("Severity", "Kind", "Message", "Detail", "Count", "Amount")
	for _, a := range alerts {
		w.append(string(a.Severity), string(a.Kind), a.Message, a.Detail, a.Count, money(a.Amount))
	}
	return w
}

func writeAging(f *excelize.File, aging domain.ReceivablesAging) *sheetWriter {
	w := &sheetWriter{f: f, sheet: agingSheet}
	w.append("Bucket", "Amount")
	w.append("Current", money(aging.Current))
	w.append("1-30 days", money(aging.Days1To30))
	w.append("31-60 days", money(aging.Days31To60))
	w.append("61-90 days", money(aging.Days61To90))
	w.append("Over 90 days", money(aging.Over90))
	w.append("Total", money(aging.Total()))
	return w
}
