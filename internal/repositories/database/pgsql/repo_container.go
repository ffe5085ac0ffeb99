package pgsql

import (
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewSourceProvider wires the PostgreSQL readers into a SourceProvider.
func NewSourceProvider(dbPool *pgxpool.Pool) portsrepo.SourceProvider {
	financeRepo := newPgxFinanceRepository(dbPool)

	return portsrepo.SourceProvider{
		CashAccounts:       financeRepo,
		ClientInvoices:     financeRepo,
		SupplierInvoices:   financeRepo,
		Expenses:           financeRepo,
		LedgerTransactions: financeRepo,
	}
}
