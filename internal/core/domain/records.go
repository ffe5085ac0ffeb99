package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashAccount is a bank or cash account. Balance may be negative (overdraft).
type CashAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Owner    string          `json:"owner"`
}

// ClientInvoiceStatus is the lifecycle state of an invoice sent to a client.
type ClientInvoiceStatus string

const (
	ClientInvoiceDraft     ClientInvoiceStatus = "draft"
	ClientInvoiceSent      ClientInvoiceStatus = "sent"
	ClientInvoicePartial   ClientInvoiceStatus = "partial"
	ClientInvoicePaid      ClientInvoiceStatus = "paid"
	ClientInvoiceOverdue   ClientInvoiceStatus = "overdue"
	ClientInvoiceCancelled ClientInvoiceStatus = "cancelled"
)

// ClientInvoice is an invoice issued to a client.
// Dates are nil when the source value was missing or unparsable.
type ClientInvoice struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	ClientName  string              `json:"clientName"`
	IssueDate   *time.Time          `json:"issueDate,omitempty"`
	CreatedDate *time.Time          `json:"createdDate,omitempty"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`    // excl. tax
	TaxAmount   decimal.Decimal     `json:"taxAmount"` // tax only
	Total       decimal.NullDecimal `json:"total"`     // incl. tax, when the source provides it
	Status      ClientInvoiceStatus `json:"status"`
	Owner       string              `json:"owner"`
}

// GrossTotal returns the tax-inclusive total, preferring the explicit total field.
func (i ClientInvoice) GrossTotal() decimal.Decimal {
	if i.Total.Valid {
		return i.Total.Decimal
	}
	return i.Amount.Add(i.TaxAmount)
}

// RevenueDate is the date an invoice counts towards revenue: issue date, else creation date.
func (i ClientInvoice) RevenueDate() *time.Time {
	if i.IssueDate != nil {
		return i.IssueDate
	}
	return i.CreatedDate
}

// IsReceivable reports whether the invoice is still owed by the client.
func (i ClientInvoice) IsReceivable() bool {
	return i.Status == ClientInvoiceSent || i.Status == ClientInvoiceOverdue
}

// SupplierInvoiceStatus is the lifecycle state of an invoice received from a supplier.
type SupplierInvoiceStatus string

const (
	SupplierInvoicePending  SupplierInvoiceStatus = "pending"
	SupplierInvoiceApproved SupplierInvoiceStatus = "approved"
	SupplierInvoicePaid     SupplierInvoiceStatus = "paid"
	SupplierInvoiceRejected SupplierInvoiceStatus = "rejected"
)

// SupplierInvoice is an invoice the business owes to a supplier.
type SupplierInvoice struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	SupplierName string                `json:"supplierName"`
	Amount       decimal.Decimal       `json:"amount"`
	Status       SupplierInvoiceStatus `json:"status"`
	CreatedDate  *time.Time            `json:"createdDate,omitempty"`
	Owner        string                `json:"owner"`
}

// IsPayable reports whether the invoice is still unpaid and not rejected.
func (i SupplierInvoice) IsPayable() bool {
	return i.Status == SupplierInvoicePending || i.Status == SupplierInvoiceApproved
}

// Expense is a general (non-invoice) expense.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedDate *time.Time      `json:"createdDate,omitempty"`
	Owner       string          `json:"owner"`
}

// LedgerTransaction is a bank ledger movement. Amount is signed, positive = inflow.
type LedgerTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        *time.Time      `json:"date,omitempty"`
	Owner       string          `json:"owner"`
}
