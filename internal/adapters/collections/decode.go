package collections

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// text renders an identifier or label that may arrive as a string, a number or null.
func text(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		// relational fields expanded by the service carry their key in "id"
		return text(v["id"])
	default:
		return ""
	}
}

func (c *Client) date(raw any) *time.Time {
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	return domain.ParseDate(s, c.location)
}

func status(raw any) string {
	return strings.ToLower(text(raw))
}

func (c *Client) decodeCashAccount(item map[string]any) domain.CashAccount {
	name := text(item["name"])
	if name == "" {
		name = text(item["bank_name"])
	}
	return domain.CashAccount{
		ID:       text(item["id"]),
		Name:     name,
		Balance:  domain.ParseAmount(item["balance"]),
		Currency: text(item["currency"]),
		Owner:    text(item[ownerField]),
	}
}

func (c *Client) decodeClientInvoice(item map[string]any) domain.ClientInvoice {
	return domain.ClientInvoice{
		ID:          text(item["id"]),
		Number:      text(item["invoice_number"]),
		ClientName:  text(item["client_name"]),
		IssueDate:   c.date(item["date_issued"]),
		CreatedDate: c.date(item["date_created"]),
		DueDate:     c.date(item["due_date"]),
		Amount:      domain.ParseAmount(item["amount"]),
		TaxAmount:   domain.ParseAmount(item["vat_amount"]),
		Total:       domain.ParseOptionalAmount(item["total_ttc"]),
		Status:      domain.ClientInvoiceStatus(status(item["status"])),
		Owner:       text(item[ownerField]),
	}
}

func (c *Client) decodeSupplierInvoice(item map[string]any) domain.SupplierInvoice {
	return domain.SupplierInvoice{
		ID:           text(item["id"]),
		Number:       text(item["invoice_number"]),
		SupplierName: text(item["supplier_name"]),
		Amount:       domain.ParseAmount(item["amount"]),
		Status:       domain.SupplierInvoiceStatus(status(item["status"])),
		CreatedDate:  c.date(item["date_created"]),
		Owner:        text(item[ownerField]),
	}
}

func (c *Client) decodeExpense(item map[string]any) domain.Expense {
	return domain.Expense{
		ID:          text(item["id"]),
		Description: text(item["description"]),
		Amount:      domain.ParseAmount(item["amount"]),
		Category:    text(item["category"]),
		CreatedDate: c.date(item["date_created"]),
		Owner:       text(item[ownerField]),
	}
}

func (c *Client) decodeLedgerTransaction(item map[string]any) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		ID:          text(item["id"]),
		Description: text(item["description"]),
		Amount:      domain.ParseAmount(item["amount"]),
		Type:        text(item["type"]),
		Date:        c.date(item["date"]),
		Owner:       text(item[ownerField]),
	}
}

func decodeAll[T any](items []map[string]any, decode func(map[string]any) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, decode(item))
	}
	return out
}
