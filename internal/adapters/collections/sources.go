package collections

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
)

const (
	collectionBankAccounts     = "bank_accounts"
	collectionClientInvoices   = "client_invoices"
	collectionSupplierInvoices = "supplier_invoices"
	collectionExpenses         = "expenses"
	collectionBankTransactions = "bank_transactions"
)

var (
	_ portsrepo.CashAccountReader       = (*Client)(nil)
	_ portsrepo.ClientInvoiceReader     = (*Client)(nil)
	_ portsrepo.SupplierInvoiceReader   = (*Client)(nil)
	_ portsrepo.ExpenseReader           = (*Client)(nil)
	_ portsrepo.LedgerTransactionReader = (*Client)(nil)
)

// NewSourceProvider exposes the client as every record reader.
func NewSourceProvider(c *Client) portsrepo.SourceProvider {
	return portsrepo.SourceProvider{
		CashAccounts:       c,
		ClientInvoices:     c,
		SupplierInvoices:   c,
		Expenses:           c,
		LedgerTransactions: c,
	}
}

func (c *Client) ListCashAccounts(ctx context.Context, scope domain.Scope, limit int) ([]domain.CashAccount, error) {
	items, err := c.listItems(ctx, itemQuery{
		collection: collectionBankAccounts,
		fields:     []string{"id", "name", "balance", "currency", "bank_name", ownerField},
		limit:      limit,
		scope:      scope,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(items, c.decodeCashAccount), nil
}

func (c *Client) ListClientInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.ClientInvoice, error) {
	items, err := c.listItems(ctx, itemQuery{
		collection: collectionClientInvoices,
		fields: []string{"id", "invoice_number", "client_name", "amount", "vat_amount", "total_ttc", "status",
			"date_issued", "date_created", "due_date", ownerField},
		sort:  "-date_created",
		limit: limit,
		scope: scope,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(items, c.decodeClientInvoice), nil
}

func (c *Client) ListSupplierInvoices(ctx context.Context, scope domain.Scope, limit int) ([]domain.SupplierInvoice, error) {
	items, err := c.listItems(ctx, itemQuery{
		collection: collectionSupplierInvoices,
		fields:     []string{"id", "invoice_number", "supplier_name", "amount", "status", "date_created", ownerField},
		sort:       "-date_created",
		limit:      limit,
		scope:      scope,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(items, c.decodeSupplierInvoice), nil
}

func (c *Client) ListExpenses(ctx context.Context, scope domain.Scope, limit int) ([]domain.Expense, error) {
	items, err := c.listItems(ctx, itemQuery{
		collection: collectionExpenses,
		fields:     []string{"id", "description", "amount", "category", "status", "date_created", ownerField},
		sort:       "-date_created",
		limit:      limit,
		scope:      scope,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(items, c.decodeExpense), nil
}

func (c *Client) ListLedgerTransactions(ctx context.Context, scope domain.Scope, limit int) ([]domain.LedgerTransaction, error) {
	items, err := c.listItems(ctx, itemQuery{
		collection: collectionBankTransactions,
		fields:     []string{"id", "description", "amount", "type", "date", "bank_account", ownerField},
		sort:       "-date",
		limit:      limit,
		scope:      scope,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(items, c.decodeLedgerTransaction), nil
}
