package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Trend is a period-over-period percentage change.
// A Trend without baseline means the previous period was zero: it is not 0% and not infinite.
type Trend struct {
	percent float64
	valid   bool
}

// NewTrend wraps a computed percentage.
func NewTrend(percent float64) Trend {
	return Trend{percent: percent, valid: true}
}

// NoBaseline is the sentinel for "no comparable previous value".
func NoBaseline() Trend {
	return Trend{}
}

// HasBaseline reports whether a percentage was computed.
func (t Trend) HasBaseline() bool {
	return t.valid
}

// Percent returns the percentage and whether it exists.
func (t Trend) Percent() (float64, bool) {
	return t.percent, t.valid
}

// MarshalJSON renders the sentinel as null.
func (t Trend) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.percent)
}

// MonthRange is one calendar month, [Start, End) in the reporting time zone.
type MonthRange struct {
	Start time.Time
	End   time.Time
	Year  int
	Month time.Month
}

// Contains reports whether t falls inside the month. A nil time is never contained.
func (r MonthRange) Contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	return !t.Before(r.Start) && t.Before(r.End)
}

// KPIResult holds the headline metrics of the finance dashboard.
type KPIResult struct {
	Treasury            decimal.Decimal
	Receivables         decimal.Decimal
	Payables            decimal.Decimal
	MonthlyRevenue      decimal.Decimal
	PrevMonthlyRevenue  decimal.Decimal
	MonthlyExpenses     decimal.Decimal
	PrevMonthlyExpenses decimal.Decimal
	NetMargin           decimal.Decimal
	PrevNetMargin       decimal.Decimal
	RevenueTrend        Trend
	ExpensesTrend       Trend
	MarginTrend         Trend
	// RunwayMonths is treasury divided by current monthly expenses; invalid when there were no expenses.
	RunwayMonths decimal.NullDecimal
	RunwayStatus RunwayStatus
}

// RunwayStatus rates how many months treasury covers at the current burn.
type RunwayStatus string

const (
	RunwayGood    RunwayStatus = "good"
	RunwayWarning RunwayStatus = "warning"
	RunwayDanger  RunwayStatus = "danger"
)

// TimeSeriesPoint is one monthly bucket of a 12-month series.
// For the P&L series Expense is supplier invoices plus general expenses and Net is the margin.
type TimeSeriesPoint struct {
	Label   string
	Period  MonthRange
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// BreakdownEntry is the revenue attributed to one owning entity.
type BreakdownEntry struct {
	Name  string
	Value decimal.Decimal
}

// AlertSeverity ranks how urgently an alert needs attention.
type AlertSeverity string

const (
	SeverityRed   AlertSeverity = "red"
	SeverityAmber AlertSeverity = "amber"
	SeverityBlue  AlertSeverity = "blue"
)

// AlertKind identifies the rule that produced an alert.
type AlertKind string

const (
	AlertSevereOverdue AlertKind = "severe_overdue"
	AlertDueSoon       AlertKind = "due_soon"
	AlertLowBalance    AlertKind = "low_balance"
	AlertBudgetOverrun AlertKind = "budget_overrun"
)

// Alert is a risk signal derived from a snapshot.
type Alert struct {
	Severity AlertSeverity
	Kind     AlertKind
	Message  string
	Detail   string
	// Count is the number of records the alert aggregates (1 for per-record alerts).
	Count int
	// Amount is the aggregated or cited amount.
	Amount decimal.Decimal
	// Reference points at the record for per-record alerts (e.g. a cash account ID).
	Reference string
}

// RecentTransaction is a ledger transaction annotated for display.
type RecentTransaction struct {
	LedgerTransaction
	Inflow bool
}

// OverdueInvoice is an overdue client invoice annotated with its lateness.
type OverdueInvoice struct {
	ClientInvoice
	DaysOverdue int
}

// ReceivablesAging splits outstanding receivables by lateness.
type ReceivablesAging struct {
	Current    decimal.Decimal
	Days1To30  decimal.Decimal
	Days31To60 decimal.Decimal
	Days61To90 decimal.Decimal
	Over90     decimal.Decimal
}

// Total returns the sum of all buckets.
func (a ReceivablesAging) Total() decimal.Decimal {
	return a.Current.Add(a.Days1To30).Add(a.Days31To60).Add(a.Days61To90).Add(a.Over90)
}

// DebtorExposure is the outstanding balance of one client.
type DebtorExposure struct {
	ClientName string
	Amount     decimal.Decimal
	Count      int
	Overdue    decimal.Decimal
}

// DashboardViews bundles every view derived from one snapshot.
type DashboardViews struct {
	Scope              Scope
	AsOf               time.Time
	KPIs               KPIResult
	CashFlow           []TimeSeriesPoint
	ProfitAndLoss      []TimeSeriesPoint
	RevenueBreakdown   []BreakdownEntry
	Alerts             []Alert
	RecentTransactions []RecentTransaction
	OverdueInvoices    []OverdueInvoice
	ReceivablesAging   ReceivablesAging
	TopDebtors         []DebtorExposure
	DegradedSources    []SourceName
	// LedgerTransactions is the raw fetched ledger list, kept for exports.
	LedgerTransactions []LedgerTransaction
}
