package mapping

import (
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/models"
)

func owner(m *string) string {
	if m == nil {
		return ""
	}
	return strings.TrimSpace(*m)
}

// ToDomainCashAccount converts a bank_accounts row to a domain CashAccount
func ToDomainCashAccount(m models.BankAccount) domain.CashAccount {
	return domain.CashAccount{
		ID:       m.ID,
		Name:     m.Name,
		Balance:  m.Balance,
		Currency: m.Currency,
		Owner:    owner(m.OwnerCompany),
	}
}

// ToDomainClientInvoice converts a client_invoices row to a domain ClientInvoice
func ToDomainClientInvoice(m models.ClientInvoice) domain.ClientInvoice {
	return domain.ClientInvoice{
		ID:          m.ID,
		Number:      m.InvoiceNumber,
		ClientName:  m.ClientName,
		IssueDate:   m.DateIssued,
		CreatedDate: m.DateCreated,
		DueDate:     m.DueDate,
		Amount:      m.Amount,
		TaxAmount:   m.VATAmount,
		Total:       m.TotalTTC,
		Status:      domain.ClientInvoiceStatus(strings.ToLower(m.Status)),
		Owner:       owner(m.OwnerCompany),
	}
}

// ToDomainSupplierInvoice converts a supplier_invoices row to a domain SupplierInvoice
func ToDomainSupplierInvoice(m models.SupplierInvoice) domain.SupplierInvoice {
	return domain.SupplierInvoice{
		ID:           m.ID,
		Number:       m.InvoiceNumber,
		SupplierName: m.SupplierName,
		Amount:       m.Amount,
		Status:       domain.SupplierInvoiceStatus(strings.ToLower(m.Status)),
		CreatedDate:  m.DateCreated,
		Owner:        owner(m.OwnerCompany),
	}
}

// ToDomainExpense converts an expenses row to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		CreatedDate: m.DateCreated,
		Owner:       owner(m.OwnerCompany),
	}
}

// ToDomainLedgerTransaction converts a bank_transactions row to a domain LedgerTransaction
func ToDomainLedgerTransaction(m models.BankTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        m.Type,
		Date:        m.Date,
		Owner:       owner(m.OwnerCompany),
	}
}

// ToDomainSlice converts a slice of rows with the given mapper
func ToDomainSlice[M any, D any](ms []M, convert func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = convert(m)
	}
	return ds
}
