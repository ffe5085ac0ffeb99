package domain_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.Scope
		wantStr string
	}{
		{raw: "", want: domain.AllScopes, wantStr: "all"},
		{raw: "  ", want: domain.AllScopes, wantStr: "all"},
		{raw: "ALL", want: domain.AllScopes, wantStr: "all"},
		{raw: " acme ", want: domain.Scope("acme"), wantStr: "acme"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := domain.ParseScope(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStr, got.String())
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{name: "nil", raw: nil, want: "0"},
		{name: "numeric string", raw: "1200.50", want: "1200.5"},
		{name: "padded string", raw: " 42 ", want: "42"},
		{name: "empty string", raw: "", want: "0"},
		{name: "garbage string", raw: "n/a", want: "0"},
		{name: "json number", raw: json.Number("-500"), want: "-500"},
		{name: "float", raw: 99.25, want: "99.25"},
		{name: "NaN", raw: math.NaN(), want: "0"},
		{name: "Inf", raw: math.Inf(1), want: "0"},
		{name: "int", raw: 7, want: "7"},
		{name: "bool", raw: true, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseAmount(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseOptionalAmount(t *testing.T) {
	assert.False(t, domain.ParseOptionalAmount(nil).Valid)
	assert.False(t, domain.ParseOptionalAmount("").Valid)
	assert.False(t, domain.ParseOptionalAmount("abc").Valid)
	assert.False(t, domain.ParseOptionalAmount(math.NaN()).Valid)
	assert.False(t, domain.ParseOptionalAmount(map[string]any{}).Valid)

	got := domain.ParseOptionalAmount("0")
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.IsZero())

	got = domain.ParseOptionalAmount(1080.0)
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(decimal.NewFromInt(1080)))
}

func TestParseDate(t *testing.T) {
	zurich, err := time.LoadLocation("Europe/Zurich")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{name: "date only", raw: "2025-03-01", want: ptr(time.Date(2025, time.March, 1, 0, 0, 0, 0, zurich))},
		{name: "naive datetime", raw: "2025-03-01T12:30:00", want: ptr(time.Date(2025, time.March, 1, 12, 30, 0, 0, zurich))},
		{name: "space separated", raw: "2025-03-01 12:30:00", want: ptr(time.Date(2025, time.March, 1, 12, 30, 0, 0, zurich))},
		{name: "rfc3339 keeps its offset", raw: "2025-03-01T00:00:00Z", want: ptr(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "yesterday", want: nil},
		{name: "impossible date", raw: "2025-02-30", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseDate(tt.raw, zurich)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestClientInvoice_GrossTotal(t *testing.T) {
	withTotal := domain.ClientInvoice{Amount: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(8), Total: decimal.NewNullDecimal(decimal.NewFromInt(110))}
	assert.True(t, withTotal.GrossTotal().Equal(decimal.NewFromInt(110)))

	withoutTotal := domain.ClientInvoice{Amount: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(8)}
	assert.True(t, withoutTotal.GrossTotal().Equal(decimal.NewFromInt(108)))
}

func TestMonthRange_Contains(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	r := domain.MonthRange{Start: start, End: start.AddDate(0, 1, 0), Year: 2025, Month: time.March}

	assert.True(t, r.Contains(&start))
	assert.False(t, r.Contains(&r.End))
	assert.False(t, r.Contains(nil))
}

func ptr(t time.Time) *time.Time {
	return &t
}
