package finance_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var zurich = mustLoadLocation("Europe/Zurich")

// fixedNow is mid-March so the previous month and the 12-month window cross a year boundary.
var fixedNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, zurich)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, zurich)
	return &t
}

func daysAgo(n int) *time.Time {
	t := time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, zurich).AddDate(0, 0, -n)
	return &t
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decFromString(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", v, err)
	}
	return d
}

func total(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func paidInvoice(owner string, amount int64, issued *time.Time) domain.ClientInvoice {
	return domain.ClientInvoice{
		ID:        owner + "-" + decimal.NewFromInt(amount).String(),
		Status:    domain.ClientInvoicePaid,
		Total:     total(amount),
		IssueDate: issued,
		Owner:     owner,
	}
}
