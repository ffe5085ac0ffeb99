package finance

import (
	"fmt"
	"os"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SeriesMonths is the length of the trailing time series.
const SeriesMonths = 12

// Policy holds the business thresholds the aggregation applies.
type Policy struct {
	LowBalanceThreshold     decimal.Decimal
	SevereOverdueDays       int
	DueSoonDays             int
	RecentTransactionsLimit int
	OverdueInvoicesLimit    int
	TopDebtorsLimit         int
	// Runway at or below these month counts is rated warning or danger.
	RunwayWarningMonths decimal.Decimal
	RunwayDangerMonths  decimal.Decimal
	UnattributedLabel   string
	Currency            string
	FetchLimits         domain.FetchLimits
}

// DefaultPolicy returns the thresholds the dashboard shipped with.
func DefaultPolicy() Policy {
	return Policy{
		LowBalanceThreshold:     decimal.NewFromInt(5000),
		SevereOverdueDays:       30,
		DueSoonDays:             7,
		RecentTransactionsLimit: 10,
		OverdueInvoicesLimit:    5,
		TopDebtorsLimit:         5,
		RunwayWarningMonths:     decimal.NewFromInt(6),
		RunwayDangerMonths:      decimal.NewFromInt(3),
		UnattributedLabel:       "unattributed",
		Currency:                "CHF",
		FetchLimits:             domain.DefaultFetchLimits(),
	}
}

// policyFile is the on-disk YAML shape. Every field is optional.
type policyFile struct {
	LowBalanceThreshold     string              `yaml:"low_balance_threshold"`
	SevereOverdueDays       *int                `yaml:"severe_overdue_days"`
	DueSoonDays             *int                `yaml:"due_soon_days"`
	RecentTransactionsLimit *int                `yaml:"recent_transactions_limit"`
	OverdueInvoicesLimit    *int                `yaml:"overdue_invoices_limit"`
	TopDebtorsLimit         *int                `yaml:"top_debtors_limit"`
	RunwayWarningMonths     string              `yaml:"runway_warning_months"`
	RunwayDangerMonths      string              `yaml:"runway_danger_months"`
	UnattributedLabel       string              `yaml:"unattributed_label"`
	Currency                string              `yaml:"currency"`
	FetchLimits             *domain.FetchLimits `yaml:"fetch_limits"`
}

// LoadPolicyFile reads a YAML policy file and overlays it on DefaultPolicy.
// An empty path returns the defaults.
func LoadPolicyFile(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("failed to read finance policy file %s: %w", path, err)
	}
	return ParsePolicy(raw)
}

// ParsePolicy overlays YAML policy content on DefaultPolicy.
func ParsePolicy(raw []byte) (Policy, error) {
	policy := DefaultPolicy()
	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return policy, fmt.Errorf("failed to parse finance policy: %w", err)
	}

	if err := overlayDecimal(&policy.LowBalanceThreshold, "low_balance_threshold", file.LowBalanceThreshold); err != nil {
		return policy, err
	}
	if err := overlayDecimal(&policy.RunwayWarningMonths, "runway_warning_months", file.RunwayWarningMonths); err != nil {
		return policy, err
	}
	if err := overlayDecimal(&policy.RunwayDangerMonths, "runway_danger_months", file.RunwayDangerMonths); err != nil {
		return policy, err
	}
	overlayInt(&policy.SevereOverdueDays, file.SevereOverdueDays)
	overlayInt(&policy.DueSoonDays, file.DueSoonDays)
	overlayInt(&policy.RecentTransactionsLimit, file.RecentTransactionsLimit)
	overlayInt(&policy.OverdueInvoicesLimit, file.OverdueInvoicesLimit)
	overlayInt(&policy.TopDebtorsLimit, file.TopDebtorsLimit)
	if file.UnattributedLabel != "" {
		policy.UnattributedLabel = file.UnattributedLabel
	}
	if file.Currency != "" {
		policy.Currency = file.Currency
	}
	if file.FetchLimits != nil {
		limits := policy.FetchLimits
		overlayPositive(&limits.CashAccounts, file.FetchLimits.CashAccounts)
		overlayPositive(&limits.ClientInvoices, file.FetchLimits.ClientInvoices)
		overlayPositive(&limits.SupplierInvoices, file.FetchLimits.SupplierInvoices)
		overlayPositive(&limits.Expenses, file.FetchLimits.Expenses)
		overlayPositive(&limits.LedgerTransactions, file.FetchLimits.LedgerTransactions)
		policy.FetchLimits = limits
	}

	if policy.SevereOverdueDays < 0 || policy.DueSoonDays < 0 {
		return policy, fmt.Errorf("policy day thresholds must not be negative")
	}
	if policy.RunwayDangerMonths.IsNegative() || policy.RunwayDangerMonths.GreaterThan(policy.RunwayWarningMonths) {
		return policy, fmt.Errorf("runway_danger_months must be between 0 and runway_warning_months")
	}
	return policy, nil
}

func overlayDecimal(dst *decimal.Decimal, key, raw string) error {
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = value
	return nil
}

func overlayInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func overlayPositive(dst *int, src int) {
	if src > 0 {
		*dst = src
	}
}

// FormatMoney renders an amount the way alert details display it, e.g. "CHF 1200.00".
func (p Policy) FormatMoney(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", p.Currency, amount.StringFixed(2))
}
