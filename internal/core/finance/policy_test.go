package finance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy_OverlaysDefaults(t *testing.T) {
	raw := []byte(`
low_balance_threshold: "12500.50"
severe_overdue_days: 45
currency: EUR
runway_warning_months: "9"
runway_danger_months: "4.5"
fetch_limits:
  ledger_transactions: 100
`)

	policy, err := finance.ParsePolicy(raw)
	require.NoError(t, err)

	assert.True(t, policy.LowBalanceThreshold.Equal(decFromString(t, "12500.50")))
	assert.Equal(t, 45, policy.SevereOverdueDays)
	assert.Equal(t, 7, policy.DueSoonDays)
	assert.Equal(t, "EUR", policy.Currency)
	assert.True(t, policy.RunwayWarningMonths.Equal(decFromString(t, "9")))
	assert.True(t, policy.RunwayDangerMonths.Equal(decFromString(t, "4.5")))
	assert.Equal(t, "unattributed", policy.UnattributedLabel)
	assert.Equal(t, 100, policy.FetchLimits.LedgerTransactions)
	assert.Equal(t, 200, policy.FetchLimits.ClientInvoices)
}

func TestParsePolicy_ZeroDueSoonIsAllowed(t *testing.T) {
	policy, err := finance.ParsePolicy([]byte("due_soon_days: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, policy.DueSoonDays)
}

func TestParsePolicy_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bad threshold", raw: `low_balance_threshold: "lots"`},
		{name: "negative days", raw: `severe_overdue_days: -1`},
		{name: "bad runway", raw: `runway_warning_months: "soon"`},
		{name: "danger above warning", raw: "runway_danger_months: \"12\"\n"},
		{name: "malformed yaml", raw: "severe_overdue_days: [1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finance.ParsePolicy([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadPolicyFile(t *testing.T) {
	policy, err := finance.LoadPolicyFile("")
	require.NoError(t, err)
	assert.Equal(t, finance.DefaultPolicy(), policy)

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_debtors_limit: 3\n"), 0o600))
	policy, err = finance.LoadPolicyFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, policy.TopDebtorsLimit)

	_, err = finance.LoadPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPolicy_FormatMoney(t *testing.T) {
	policy := finance.DefaultPolicy()
	assert.Equal(t, "CHF 1200.00", policy.FormatMoney(dec(1200)))
	assert.Equal(t, "CHF -0.50", policy.FormatMoney(decFromString(t, "-0.5")))
}
