package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of bank_accounts.
type BankAccount struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Balance      decimal.Decimal `db:"balance"`
	Currency     string          `db:"currency"`
	OwnerCompany *string         `db:"owner_company"`
}

// ClientInvoice is a row of client_invoices.
type ClientInvoice struct {
	ID            string              `db:"id"`
	InvoiceNumber string              `db:"invoice_number"`
	ClientName    string              `db:"client_name"`
	Amount        decimal.Decimal     `db:"amount"`
	VATAmount     decimal.Decimal     `db:"vat_amount"`
	TotalTTC      decimal.NullDecimal `db:"total_ttc"` // nullable
	Status        string              `db:"status"`
	DateIssued    *time.Time          `db:"date_issued"`
	DateCreated   *time.Time          `db:"date_created"`
	DueDate       *time.Time          `db:"due_date"`
	OwnerCompany  *string             `db:"owner_company"`
}

// SupplierInvoice is a row of supplier_invoices.
type SupplierInvoice struct {
	ID            string          `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	SupplierName  string          `db:"supplier_name"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	DateCreated   *time.Time      `db:"date_created"`
	OwnerCompany  *string         `db:"owner_company"`
}

// Expense is a row of expenses.
type Expense struct {
	ID           string          `db:"id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	Category     string          `db:"category"`
	DateCreated  *time.Time      `db:"date_created"`
	OwnerCompany *string         `db:"owner_company"`
}

// BankTransaction is a row of bank_transactions. Amount is signed.
type BankTransaction struct {
	ID           string          `db:"id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	Type         string          `db:"type"`
	Date         *time.Time      `db:"date"`
	OwnerCompany *string         `db:"owner_company"`
}
