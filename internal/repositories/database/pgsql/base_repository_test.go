package pgsql

import (
	"strings"
	"testing"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOwnerArg(t *testing.T) {
	assert.Equal(t, "", ownerArg(domain.AllScopes))
	assert.Equal(t, "", ownerArg(domain.ParseScope("ALL")))
	assert.Equal(t, "ACME", ownerArg(domain.Scope("ACME")))
}

func TestNewSourceProvider_FillsEveryReader(t *testing.T) {
	provider := NewSourceProvider(nil)

	assert.NotNil(t, provider.CashAccounts)
	assert.NotNil(t, provider.ClientInvoices)
	assert.NotNil(t, provider.SupplierInvoices)
	assert.NotNil(t, provider.Expenses)
	assert.NotNil(t, provider.LedgerTransactions)
}

func TestListBankAccountsQuery_FallsBackToBankName(t *testing.T) {
	query := strings.Join(strings.Fields(listBankAccountsQuery), " ")

	assert.Contains(t, query, "COALESCE(NULLIF(name, ''), bank_name, '') AS name")
}
