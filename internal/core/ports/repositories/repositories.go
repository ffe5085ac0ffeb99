package repositories

// SourceProvider bundles the five record readers a dashboard snapshot is assembled from.
// Any implementation (remote collections, PostgreSQL) fills every field.
type SourceProvider struct {
	CashAccounts       CashAccountReader
	ClientInvoices     ClientInvoiceReader
	SupplierInvoices   SupplierInvoiceReader
	Expenses           ExpenseReader
	LedgerTransactions LedgerTransactionReader
}
