package pgsql

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
	"github.com/SscSPs/finance_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFinanceRepository reads the finance record tables.
type PgxFinanceRepository struct {
	BaseRepository
}

func newPgxFinanceRepository(pool *pgxpool.Pool) *PgxFinanceRepository {
	return &PgxFinanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interfaces
var (
	_ portsrepo.CashAccountReader       = (*PgxFinanceRepository)(nil)
	_ portsrepo.ClientInvoiceReader     = (*PgxFinanceRepository)(nil)
	_ portsrepo.SupplierInvoiceReader   = (*PgxFinanceRepository)(nil)
	_ portsrepo.ExpenseReader           = (*PgxFinanceRepository)(nil)
	_ portsrepo.LedgerTransactionReader = (*PgxFinanceRepository)(nil)
)

const (
	listBankAccountsQuery = `
		SELECT id, COALESCE(NULLIF(name, ''), bank_name, '') AS name, balance, currency, owner_company
		FROM bank_accounts
		WHERE ($1 = '' OR owner_company = $1)
		ORDER BY 2, id
		LIMIT $2;
	`
	listClientInvoicesQuery = `
		SELECT id, invoice_number, client_name, amount, vat_amount, total_ttc, status,
		       date_issued, date_created, due_date, owner_company
		FROM client_invoices
		WHERE ($1 = '' OR owner_company = $1)
		ORDER BY date_created DESC NULLS LAST, id
		LIMIT $2;
	`
	listSupplierInvoicesQuery = `
		SELECT id, invoice_number, supplier_name, amount, status, date_created, owner_company
		FROM supplier_invoices
		WHERE ($1 = '' OR owner_company = $1)
		ORDER BY date_created DESC NULLS LAST, id
		LIMIT $2;
	`
	listExpensesQuery = `
		SELECT id, description, amount, category, date_created, owner_company
		FROM expenses
		WHERE ($1 = '' OR owner_company = $1)
		ORDER BY date_created DESC NULLS LAST, id
		LIMIT $2;
	`
	listBankTransactionsQuery = `
		SELECT id, description, amount, type, date, owner_company
		FROM bank_transactions
		WHERE ($1 = '' OR owner_company = $1)
		ORDER BY date DESC NULLS LAST, id
		LIMIT $2;
	`
)

// ListCashAccounts retrieves bank accounts for the scope.
func (r *PgxFinanceRepository) ListCashAccounts(ctx context.Context, scope domain.Scope, limit int) ([]domain.CashAccount, error) {
	rows, err := listRows(ctx, &r.BaseRepository, "bank accounts", listBankAccountsQuery, scope, limit,
		func(row pgx.CollectableRow) (models.BankAccount, error) {
			var m models.BankAccount
			err := row.Scan(&m.ID, &m.Name, &m.Balance, &m.Currency, &m.OwnerCompany)
			return m, err
		})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCashAccount), nil
}

// ListClientInvoices retrieves client invoices for the scope, newest first.
func (r *PgxFinanceRepository) ListClientInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.ClientInvoice, error) {
	rows, err := listRows(ctx, &r.BaseRepository, "client invoices", listClientInvoicesQuery, scope, limit,
		func(row pgx.CollectableRow) (models.ClientInvoice, error) {
			var m models.ClientInvoice
			err := row.Scan(
				&m.ID,
				&m.InvoiceNumber,
				&m.ClientName,
				&m.Amount,
				&m.VATAmount,
				&m.TotalTTC,
				&m.Status,
				&m.DateIssued,
				&m.DateCreated,
				&m.DueDate,
				&m.OwnerCompany,
			)
			return m, err
		})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainClientInvoice), nil
}

// ListSupplierInvoices retrieves supplier invoices for the scope, newest first.
func (r *PgxFinanceRepository) ListSupplierInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.SupplierInvoice, error) {
	rows, err := listRows(ctx, &r.BaseRepository, "supplier invoices", listSupplierInvoicesQuery, scope, limit,
		func(row pgx.CollectableRow) (models.SupplierInvoice, error) {
			var m models.SupplierInvoice
			err := row.Scan(&m.ID, &m.InvoiceNumber, &m.SupplierName, &m.Amount, &m.Status, &m.DateCreated, &m.OwnerCompany)
			return m, err
		})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainSupplierInvoice), nil
}

// ListExpenses retrieves general expenses for the scope, newest first.
func (r *PgxFinanceRepository) ListExpenses(ctx context.Context, scope domain.Scope, limit int) ([]domain.Expense, error) {
	rows, err := listRows(ctx, &r.BaseRepository, "expenses", listExpensesQuery, scope, limit,
		func(row pgx.CollectableRow) (models.Expense, error) {
			var m models.Expense
			err := row.Scan(&m.ID, &m.Description, &m.Amount, &m.Category, &m.DateCreated, &m.OwnerCompany)
			return m, err
		})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainExpense), nil
}

// ListLedgerTransactions retrieves bank transactions for the scope, newest first.
func (r *PgxFinanceRepository) ListLedgerTransactions(ctx context.Context, scope domain.Scope, limit int) ([]domain.LedgerTransaction, error) {
	rows, err := listRows(ctx, &r.BaseRepository, "bank transactions", listBankTransactionsQuery, scope, limit,
		func(row pgx.CollectableRow) (models.BankTransaction, error) {
			var m models.BankTransaction
			err := row.Scan(&m.ID, &m.Description, &m.Amount, &m.Type, &m.Date, &m.OwnerCompany)
			return m, err
		})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainLedgerTransaction), nil
}
