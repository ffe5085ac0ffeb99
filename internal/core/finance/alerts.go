package finance

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClassifyAlerts evaluates every risk rule against the snapshot.
// Rules are independent; the result is rebuilt from scratch on every call.
func ClassifyAlerts(snapshot *domain.Snapshot, now time.Time, policy Policy) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	if a, ok := severeOverdueAlert(snapshot.ClientInvoices, now, policy); ok {
		alerts = append(alerts, a)
	}
	if a, ok := dueSoonAlert(snapshot.ClientInvoices, now, policy); ok {
		alerts = append(alerts, a)
	}
	alerts = append(alerts, lowBalanceAlerts(snapshot.CashAccounts, policy)...)

	current := CurrentMonth(now)
	revenue := PaidRevenueIn(snapshot.ClientInvoices, current)
	expenses := ExpensesIn(snapshot.Expenses, current)
	if a, ok := budgetOverrunAlert(revenue, expenses, policy); ok {
		alerts = append(alerts, a)
	}
	return alerts
}

// severeOverdueAlert fires when overdue invoices are late by strictly more than SevereOverdueDays.
func severeOverdueAlert(invoices []domain.ClientInvoice, now time.Time, policy Policy) (domain.Alert, bool) {
	count := 0
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != domain.ClientInvoiceOverdue || inv.DueDate == nil {
			continue
		}
		if DaysBetween(now, *inv.DueDate) > policy.SevereOverdueDays {
			count++
			total = total.Add(inv.GrossTotal())
		}
	}
	if count == 0 {
		return domain.Alert{}, false
	}
	return domain.Alert{
		Severity: domain.SeverityRed,
		Kind:     domain.AlertSevereOverdue,
		Message:  fmt.Sprintf("%d %s overdue by more than %d days", count, plural(count, "invoice", "invoices"), policy.SevereOverdueDays),
		Detail:   "Total amount: " + policy.FormatMoney(total),
		Count:    count,
		Amount:   total,
	}, true
}

// dueSoonAlert fires for sent invoices falling due within the next DueSoonDays days.
// An invoice due today is not "soon" any more and one due later than the window is ignored.
func dueSoonAlert(invoices []domain.ClientInvoice, now time.Time, policy Policy) (domain.Alert, bool) {
	count := 0
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != domain.ClientInvoiceSent || inv.DueDate == nil {
			continue
		}
		days := DaysBetween(now, *inv.DueDate)
		if days >= -policy.DueSoonDays && days < 0 {
			count++
			total = total.Add(inv.GrossTotal())
		}
	}
	if count == 0 {
		return domain.Alert{}, false
	}
	return domain.Alert{
		Severity: domain.SeverityAmber,
		Kind:     domain.AlertDueSoon,
		Message:  fmt.Sprintf("%d %s due within the next %d days", count, plural(count, "invoice", "invoices"), policy.DueSoonDays),
		Detail:   "Total amount: " + policy.FormatMoney(total),
		Count:    count,
		Amount:   total,
	}, true
}

// lowBalanceAlerts emits one alert per account strictly below the threshold.
func lowBalanceAlerts(accounts []domain.CashAccount, policy Policy) []domain.Alert {
	var alerts []domain.Alert
	for _, acc := range accounts {
		if !acc.Balance.LessThan(policy.LowBalanceThreshold) {
			continue
		}
		name := acc.Name
		if name == "" {
			name = "N/A"
		}
		alerts = append(alerts, domain.Alert{
			Severity:  domain.SeverityAmber,
			Kind:      domain.AlertLowBalance,
			Message:   fmt.Sprintf("Low balance on account %q", name),
			Detail:    fmt.Sprintf("Current balance: %s (threshold: %s)", policy.FormatMoney(acc.Balance), policy.FormatMoney(policy.LowBalanceThreshold)),
			Count:     1,
			Amount:    acc.Balance,
			Reference: acc.ID,
		})
	}
	return alerts
}

// budgetOverrunAlert fires when this month's expenses exceed a non-zero revenue.
func budgetOverrunAlert(revenue, expenses decimal.Decimal, policy Policy) (domain.Alert, bool) {
	if !expenses.GreaterThan(revenue) || !revenue.IsPositive() {
		return domain.Alert{}, false
	}
	return domain.Alert{
		Severity: domain.SeverityRed,
		Kind:     domain.AlertBudgetOverrun,
		Message:  "Expenses exceed revenue this month",
		Detail:   fmt.Sprintf("Expenses: %s vs Revenue: %s", policy.FormatMoney(expenses), policy.FormatMoney(revenue)),
		Count:    1,
		Amount:   expenses.Sub(revenue),
	}, true
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
