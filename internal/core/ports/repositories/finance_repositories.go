package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// Every reader returns at most limit records, filtered by owner unless scope is domain.AllScopes.
// Readers are read-only and must honour ctx cancellation.

// CashAccountReader reads bank and cash accounts.
type CashAccountReader interface {
	ListCashAccounts(ctx context.Context, scope domain.Scope, limit int) ([]domain.CashAccount, error)
}

// ClientInvoiceReader reads invoices issued to clients, newest first.
type ClientInvoiceReader interface {
	ListClientInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.ClientInvoice, error)
}

// SupplierInvoiceReader reads invoices received from suppliers, newest first.
type SupplierInvoiceReader interface {
	ListSupplierInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.SupplierInvoice, error)
}

// ExpenseReader reads general expenses, newest first.
type ExpenseReader interface {
	ListExpenses(ctx context.Context, scope domain.Scope, limit int) ([]domain.Expense, error)
}

// LedgerTransactionReader reads bank ledger transactions, newest first.
type LedgerTransactionReader interface {
	ListLedgerTransactions(ctx context.Context, scope domain.Scope, limit int) ([]domain.LedgerTransaction, error)
}
