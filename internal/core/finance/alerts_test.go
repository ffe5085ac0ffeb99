package finance_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertsOfKind(alerts []domain.Alert, kind domain.AlertKind) []domain.Alert {
	var out []domain.Alert
	for _, a := range alerts {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

func TestClassifyAlerts_SevereOverdue(t *testing.T) {
	snapshot := &domain.Snapshot{ClientInvoices: []domain.ClientInvoice{
		{ID: "late", Status: domain.ClientInvoiceOverdue, DueDate: daysAgo(40), Total: total(1200)},
		{ID: "recent", Status: domain.ClientInvoiceOverdue, DueDate: daysAgo(3), Total: total(300)},
	}}

	alerts := finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy())

	severe := alertsOfKind(alerts, domain.AlertSevereOverdue)
	require.Len(t, severe, 1)
	assert.Equal(t, domain.SeverityRed, severe[0].Severity)
	assert.Equal(t, 1, severe[0].Count)
	assert.True(t, severe[0].Amount.Equal(dec(1200)))
	assert.Equal(t, "1 invoice overdue by more than 30 days", severe[0].Message)
	assert.Equal(t, "Total amount: CHF 1200.00", severe[0].Detail)

	assert.True(t, finance.Receivables(snapshot.ClientInvoices).Equal(dec(1500)))
}

func TestClassifyAlerts_SevereOverdueBoundary(t *testing.T) {
	tests := []struct {
		name      string
		daysLate  int
		wantAlert bool
	}{
		{name: "exactly threshold", daysLate: 30, wantAlert: false},
		{name: "one day past threshold", daysLate: 31, wantAlert: true},
		{name: "not yet due", daysLate: -2, wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := &domain.Snapshot{ClientInvoices: []domain.ClientInvoice{
				{ID: "inv", Status: domain.ClientInvoiceOverdue, DueDate: daysAgo(tt.daysLate), Total: total(100)},
			}}
			severe := alertsOfKind(finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy()), domain.AlertSevereOverdue)
			assert.Equal(t, tt.wantAlert, len(severe) == 1)
		})
	}
}

func TestClassifyAlerts_IgnoresUndatedAndNonOverdue(t *testing.T) {
	snapshot := &domain.Snapshot{ClientInvoices: []domain.ClientInvoice{
		{ID: "undated", Status: domain.ClientInvoiceOverdue, Total: total(100)},
		{ID: "paid", Status: domain.ClientInvoicePaid, DueDate: daysAgo(90), Total: total(100)},
	}}

	alerts := finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy())
	assert.Empty(t, alertsOfKind(alerts, domain.AlertSevereOverdue))
}

func TestClassifyAlerts_DueSoonWindow(t *testing.T) {
	snapshot := &domain.Snapshot{ClientInvoices: []domain.ClientInvoice{
		{ID: "today", Status: domain.ClientInvoiceSent, DueDate: daysAgo(0), Total: total(1)},
		{ID: "tomorrow", Status: domain.ClientInvoiceSent, DueDate: daysAgo(-1), Total: total(100)},
		{ID: "edge", Status: domain.ClientInvoiceSent, DueDate: daysAgo(-7), Total: total(200)},
		{ID: "later", Status: domain.ClientInvoiceSent, DueDate: daysAgo(-8), Total: total(400)},
		{ID: "draft", Status: domain.ClientInvoiceDraft, DueDate: daysAgo(-2), Total: total(800)},
	}}

	dueSoon := alertsOfKind(finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy()), domain.AlertDueSoon)

	require.Len(t, dueSoon, 1)
	assert.Equal(t, domain.SeverityAmber, dueSoon[0].Severity)
	assert.Equal(t, 2, dueSoon[0].Count)
	assert.True(t, dueSoon[0].Amount.Equal(dec(300)))
	assert.Equal(t, "2 invoices due within the next 7 days", dueSoon[0].Message)
}

func TestClassifyAlerts_LowBalancePerAccount(t *testing.T) {
	snapshot := &domain.Snapshot{CashAccounts: []domain.CashAccount{
		{ID: "a", Name: "Operating", Balance: dec(4999)},
		{ID: "b", Name: "Savings", Balance: dec(5000)},
		{ID: "c", Balance: dec(-20)},
	}}

	low := alertsOfKind(finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy()), domain.AlertLowBalance)

	require.Len(t, low, 2)
	assert.Equal(t, "a", low[0].Reference)
	assert.Equal(t, `Low balance on account "Operating"`, low[0].Message)
	assert.Equal(t, "Current balance: CHF 4999.00 (threshold: CHF 5000.00)", low[0].Detail)
	assert.Equal(t, `Low balance on account "N/A"`, low[1].Message)
}

func TestClassifyAlerts_BudgetOverrun(t *testing.T) {
	snapshot := &domain.Snapshot{
		ClientInvoices: []domain.ClientInvoice{paidInvoice("acme", 5000, datePtr(2025, time.March, 4))},
		Expenses:       []domain.Expense{{ID: "e", Amount: dec(8000), CreatedDate: datePtr(2025, time.March, 5)}},
	}

	overrun := alertsOfKind(finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy()), domain.AlertBudgetOverrun)

	require.Len(t, overrun, 1)
	assert.Equal(t, domain.SeverityRed, overrun[0].Severity)
	assert.Contains(t, overrun[0].Detail, "CHF 8000.00")
	assert.Contains(t, overrun[0].Detail, "CHF 5000.00")
	assert.True(t, overrun[0].Amount.Equal(dec(3000)))
}

func TestClassifyAlerts_NoOverrunWithoutRevenue(t *testing.T) {
	snapshot := &domain.Snapshot{
		Expenses: []domain.Expense{{ID: "e", Amount: dec(8000), CreatedDate: datePtr(2025, time.March, 5)}},
	}

	alerts := finance.ClassifyAlerts(snapshot, fixedNow, finance.DefaultPolicy())
	assert.Empty(t, alertsOfKind(alerts, domain.AlertBudgetOverrun))
}

func TestClassifyAlerts_OrderAndCustomPolicy(t *testing.T) {
	policy := finance.DefaultPolicy()
	policy.LowBalanceThreshold = dec(100)
	policy.SevereOverdueDays = 10

	snapshot := &domain.Snapshot{
		CashAccounts: []domain.CashAccount{{ID: "a", Name: "Operating", Balance: dec(50)}},
		ClientInvoices: []domain.ClientInvoice{
			{ID: "late", Status: domain.ClientInvoiceOverdue, DueDate: daysAgo(11), Total: total(10)},
			{ID: "soon", Status: domain.ClientInvoiceSent, DueDate: daysAgo(-3), Total: total(10)},
			paidInvoice("acme", 100, datePtr(2025, time.March, 2)),
		},
		Expenses: []domain.Expense{{ID: "e", Amount: dec(200), CreatedDate: datePtr(2025, time.March, 2)}},
	}

	alerts := finance.ClassifyAlerts(snapshot, fixedNow, policy)

	kinds := make([]domain.AlertKind, 0, len(alerts))
	for _, a := range alerts {
		kinds = append(kinds, a.Kind)
	}
	assert.Equal(t, []domain.AlertKind{
		domain.AlertSevereOverdue,
		domain.AlertDueSoon,
		domain.AlertLowBalance,
		domain.AlertBudgetOverrun,
	}, kinds)
}

func TestClassifyAlerts_EmptySnapshot(t *testing.T) {
	alerts := finance.ClassifyAlerts(&domain.Snapshot{}, fixedNow, finance.DefaultPolicy())
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
