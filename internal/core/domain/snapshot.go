package domain

import "time"

// SourceName names one of the five record sets a snapshot is assembled from.
type SourceName string

const (
	SourceCashAccounts       SourceName = "cash_accounts"
	SourceClientInvoices     SourceName = "client_invoices"
	SourceSupplierInvoices   SourceName = "supplier_invoices"
	SourceExpenses           SourceName = "expenses"
	SourceLedgerTransactions SourceName = "ledger_transactions"
)

// AllSources lists every record set in fetch order.
var AllSources = []SourceName{
	SourceCashAccounts,
	SourceClientInvoices,
	SourceSupplierInvoices,
	SourceExpenses,
	SourceLedgerTransactions,
}

// Snapshot is the set of records fetched together for one aggregation cycle.
// It is treated as immutable once assembled and is always replaced wholesale.
type Snapshot struct {
	Scope              Scope
	AsOf               time.Time
	CashAccounts       []CashAccount
	ClientInvoices     []ClientInvoice
	SupplierInvoices   []SupplierInvoice
	Expenses           []Expense
	LedgerTransactions []LedgerTransaction

	// DegradedSources lists record sets whose fetch failed and were replaced by an empty list.
	DegradedSources []SourceName
}

// IsDegraded reports whether the named source failed during the fetch.
func (s *Snapshot) IsDegraded(name SourceName) bool {
	for _, d := range s.DegradedSources {
		if d == name {
			return true
		}
	}
	return false
}

// FetchLimits caps the number of records requested from each source.
type FetchLimits struct {
	CashAccounts       int `yaml:"cash_accounts" validate:"gt=0"`
	ClientInvoices     int `yaml:"client_invoices" validate:"gt=0"`
	SupplierInvoices   int `yaml:"supplier_invoices" validate:"gt=0"`
	Expenses           int `yaml:"expenses" validate:"gt=0"`
	LedgerTransactions int `yaml:"ledger_transactions" validate:"gt=0"`
}

// DefaultFetchLimits mirrors the caps the dashboard has always used.
func DefaultFetchLimits() FetchLimits {
	return FetchLimits{
		CashAccounts:       200,
		ClientInvoices:     200,
		SupplierInvoices:   200,
		Expenses:           200,
		LedgerTransactions: 50,
	}
}
