package finance_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRevenueBreakdown_OrdersByValue(t *testing.T) {
	march := datePtr(2025, time.March, 1)
	invoices := []domain.ClientInvoice{
		paidInvoice("gamma", 4000, march),
		paidInvoice("alpha", 10000, march),
		paidInvoice("beta", 6000, march),
	}

	entries := finance.BuildRevenueBreakdown(invoices, "unattributed")

	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "beta", entries[1].Name)
	assert.Equal(t, "gamma", entries[2].Name)

	sum := decimal.Zero
	for i, want := range []int64{10000, 6000, 4000} {
		assert.True(t, entries[i].Value.Equal(dec(want)))
		sum = sum.Add(entries[i].Value)
	}
	assert.True(t, sum.Equal(dec(20000)))
}

func TestBuildRevenueBreakdown_SumsToNonCancelledRevenue(t *testing.T) {
	invoices := []domain.ClientInvoice{
		{ID: "1", Owner: "alpha", Status: domain.ClientInvoicePaid, Total: total(100)},
		{ID: "2", Owner: "alpha", Status: domain.ClientInvoiceSent, Amount: dec(50), TaxAmount: dec(4)},
		{ID: "3", Owner: "beta", Status: domain.ClientInvoiceDraft, Total: total(75)},
		{ID: "4", Owner: "beta", Status: domain.ClientInvoiceCancelled, Total: total(10000)},
		{ID: "5", Status: domain.ClientInvoiceOverdue, Total: total(20)},
	}

	entries := finance.BuildRevenueBreakdown(invoices, "unattributed")

	sum := decimal.Zero
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		sum = sum.Add(e.Value)
		names = append(names, e.Name)
	}
	assert.True(t, sum.Equal(finance.NonCancelledRevenue(invoices)), "breakdown %s != %s", sum, finance.NonCancelledRevenue(invoices))
	assert.Equal(t, []string{"alpha", "beta", "unattributed"}, names)
}

func TestBuildRevenueBreakdown_TiesSortByName(t *testing.T) {
	invoices := []domain.ClientInvoice{
		paidInvoice("zeta", 500, nil),
		paidInvoice("eta", 500, nil),
	}

	entries := finance.BuildRevenueBreakdown(invoices, "unattributed")

	require.Len(t, entries, 2)
	assert.Equal(t, "eta", entries[0].Name)
	assert.Equal(t, "zeta", entries[1].Name)
}

func TestBuildRevenueBreakdown_Empty(t *testing.T) {
	entries := finance.BuildRevenueBreakdown(nil, "unattributed")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
