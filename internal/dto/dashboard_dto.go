package dto

import (
	"math"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// KPIResponse holds the headline metrics. Trends are percentages, null when the previous month was zero.
type KPIResponse struct {
	Treasury            decimal.Decimal  `json:"treasury"`
	Receivables         decimal.Decimal  `json:"receivables"`
	Payables            decimal.Decimal  `json:"payables"`
	MonthlyRevenue      decimal.Decimal  `json:"monthlyRevenue"`
	PrevMonthlyRevenue  decimal.Decimal  `json:"prevMonthlyRevenue"`
	MonthlyExpenses     decimal.Decimal  `json:"monthlyExpenses"`
	PrevMonthlyExpenses decimal.Decimal  `json:"prevMonthlyExpenses"`
	NetMargin           decimal.Decimal  `json:"netMargin"`
	PrevNetMargin       decimal.Decimal  `json:"prevNetMargin"`
	RevenueTrend        *float64         `json:"revenueTrend"`
	ExpensesTrend       *float64         `json:"expensesTrend"`
	MarginTrend         *float64         `json:"marginTrend"`
	RunwayMonths        *decimal.Decimal `json:"runwayMonths"`
	RunwayStatus        string           `json:"runwayStatus"`
}

// TimeSeriesPointResponse is one month of a 12-month series.
type TimeSeriesPointResponse struct {
	Label       string          `json:"label"`
	PeriodStart string          `json:"periodStart"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expense     decimal.Decimal `json:"expense"`
	Net         decimal.Decimal `json:"net"`
}

// BreakdownEntryResponse is the revenue of one entity.
type BreakdownEntryResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// AlertResponse is one risk signal.
type AlertResponse struct {
	Severity  string          `json:"severity"`
	Kind      string          `json:"kind"`
	Message   string          `json:"message"`
	Detail    string          `json:"detail"`
	Count     int             `json:"count"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
}

// RecentTransactionResponse is a ledger movement for the activity feed.
type RecentTransactionResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        *string         `json:"date"`
	Owner       string          `json:"owner"`
	Inflow      bool            `json:"inflow"`
}

// OverdueInvoiceResponse is an overdue client invoice.
type OverdueInvoiceResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	ClientName  string          `json:"clientName"`
	DueDate     *string         `json:"dueDate"`
	Total       decimal.Decimal `json:"total"`
	DaysOverdue int             `json:"daysOverdue"`
	Owner       string          `json:"owner"`
}

// ReceivablesAgingResponse splits outstanding receivables by lateness.
type ReceivablesAgingResponse struct {
	Current    decimal.Decimal `json:"current"`
	Days1To30  decimal.Decimal `json:"days1To30"`
	Days31To60 decimal.Decimal `json:"days31To60"`
	Days61To90 decimal.Decimal `json:"days61To90"`
	Over90     decimal.Decimal `json:"over90"`
	Total      decimal.Decimal `json:"total"`
}

// DebtorExposureResponse is the outstanding balance of one client.
type DebtorExposureResponse struct {
	ClientName string          `json:"clientName"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Overdue    decimal.Decimal `json:"overdue"`
}

// DashboardResponse is the full consolidated dashboard.
type DashboardResponse struct {
	Scope              string                      `json:"scope"`
	AsOf               time.Time                   `json:"asOf"`
	DegradedSources    []string                    `json:"degradedSources"`
	KPIs               KPIResponse                 `json:"kpis"`
	CashFlow           []TimeSeriesPointResponse   `json:"cashFlow"`
	ProfitAndLoss      []TimeSeriesPointResponse   `json:"profitAndLoss"`
	RevenueBreakdown   []BreakdownEntryResponse    `json:"revenueBreakdown"`
	Alerts             []AlertResponse             `json:"alerts"`
	RecentTransactions []RecentTransactionResponse `json:"recentTransactions"`
	OverdueInvoices    []OverdueInvoiceResponse    `json:"overdueInvoices"`
	ReceivablesAging   ReceivablesAgingResponse    `json:"receivablesAging"`
	TopDebtors         []DebtorExposureResponse    `json:"topDebtors"`
}

// InvalidateCacheRequest names the scope whose records changed. Empty or "all" drops every scope.
type InvalidateCacheRequest struct {
	Scope string `json:"scope" binding:"max=128"`
}

func trendValue(t domain.Trend) *float64 {
	pct, ok := t.Percent()
	if !ok {
		return nil
	}
	rounded := math.Round(pct*100) / 100
	return &rounded
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ToKPIResponse converts the domain KPI result
func ToKPIResponse(k domain.KPIResult) KPIResponse {
	resp := KPIResponse{
		Treasury:            k.Treasury,
		Receivables:         k.Receivables,
		Payables:            k.Payables,
		MonthlyRevenue:      k.MonthlyRevenue,
		PrevMonthlyRevenue:  k.PrevMonthlyRevenue,
		MonthlyExpenses:     k.MonthlyExpenses,
		PrevMonthlyExpenses: k.PrevMonthlyExpenses,
		NetMargin:           k.NetMargin,
		PrevNetMargin:       k.PrevNetMargin,
		RevenueTrend:        trendValue(k.RevenueTrend),
		ExpensesTrend:       trendValue(k.ExpensesTrend),
		MarginTrend:         trendValue(k.MarginTrend),
		RunwayStatus:        string(k.RunwayStatus),
	}
	if k.RunwayMonths.Valid {
		runway := k.RunwayMonths.Decimal
		resp.RunwayMonths = &runway
	}
	return resp
}

// ToTimeSeriesResponse converts a monthly series
func ToTimeSeriesResponse(points []domain.TimeSeriesPoint) []TimeSeriesPointResponse {
	resp := make([]TimeSeriesPointResponse, len(points))
	for i, p := range points {
		resp[i] = TimeSeriesPointResponse{
			Label:       p.Label,
			PeriodStart: p.Period.Start.Format(dateLayout),
			Revenue:     p.Revenue,
			Expense:     p.Expense,
			Net:         p.Net,
		}
	}
	return resp
}

// ToDashboardResponse converts the dashboard views to the API response
func ToDashboardResponse(v *domain.DashboardViews) DashboardResponse {
	resp := DashboardResponse{
		Scope:              v.Scope.String(),
		AsOf:               v.AsOf,
		DegradedSources:    make([]string, len(v.DegradedSources)),
		KPIs:               ToKPIResponse(v.KPIs),
		CashFlow:           ToTimeSeriesResponse(v.CashFlow),
		ProfitAndLoss:      ToTimeSeriesResponse(v.ProfitAndLoss),
		RevenueBreakdown:   make([]BreakdownEntryResponse, len(v.RevenueBreakdown)),
		Alerts:             make([]AlertResponse, len(v.Alerts)),
		RecentTransactions: make([]RecentTransactionResponse, len(v.RecentTransactions)),
		OverdueInvoices:    make([]OverdueInvoiceResponse, len(v.OverdueInvoices)),
		TopDebtors:         make([]DebtorExposureResponse, len(v.TopDebtors)),
		ReceivablesAging: ReceivablesAgingResponse{
			Current:    v.ReceivablesAging.Current,
			Days1To30:  v.ReceivablesAging.Days1To30,
			Days31To60: v.ReceivablesAging.Days31To60,
			Days61To90: v.ReceivablesAging.Days61To90,
			Over90:     v.ReceivablesAging.Over90,
			Total:      v.ReceivablesAging.Total(),
		},
	}

	for i, s := range v.DegradedSources {
		resp.DegradedSources[i] = string(s)
	}
	for i, e := range v.RevenueBreakdown {
		resp.RevenueBreakdown[i] = BreakdownEntryResponse{Name: e.Name, Value: e.Value}
	}
	for i, a := range v.Alerts {
		resp.Alerts[i] = AlertResponse{
			Severity:  string(a.Severity),
			Kind:      string(a.Kind),
			Message:   a.Message,
			Detail:    a.Detail,
			Count:     a.Count,
			Amount:    a.Amount,
			Reference: a.Reference,
		}
	}
	for i, t := range v.RecentTransactions {
		resp.RecentTransactions[i] = RecentTransactionResponse{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount,
			Type:        t.Type,
			Date:        dateString(t.Date),
			Owner:       t.Owner,
			Inflow:      t.Inflow,
		}
	}
	for i, inv := range v.OverdueInvoices {
		resp.OverdueInvoices[i] = OverdueInvoiceResponse{
			ID:          inv.ID,
			Number:      inv.Number,
			ClientName:  inv.ClientName,
			DueDate:     dateString(inv.DueDate),
			Total:       inv.GrossTotal(),
			DaysOverdue: inv.DaysOverdue,
			Owner:       inv.Owner,
		}
	}
	for i, d := range v.TopDebtors {
		resp.TopDebtors[i] = DebtorExposureResponse{
			ClientName: d.ClientName,
			Amount:     d.Amount,
			Count:      d.Count,
			Overdue:    d.Overdue,
		}
	}
	return resp
}
