package domain

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Scope identifies the owning entity (business unit) a dashboard is filtered to.
// The zero value means "all entities".
type Scope string

// AllScopes is the unfiltered scope.
const AllScopes Scope = ""

// ParseScope normalises a scope key coming from a request or config.
// Empty values and "all" (any case) map to AllScopes.
func ParseScope(raw string) Scope {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return AllScopes
	}
	return Scope(trimmed)
}

// IsAll reports whether the scope applies no owner filter.
func (s Scope) IsAll() bool {
	return s == AllScopes
}

// String returns "all" for the unfiltered scope so it can be used in logs and cache keys.
func (s Scope) String() string {
	if s.IsAll() {
		return "all"
	}
	return string(s)
}

// ParseAmount coerces a loosely typed amount into a decimal.
// nil, empty strings, non-numeric strings, NaN and Inf all become zero
// so that malformed records never poison a sum.
func ParseAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case float32:
		return ParseAmount(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// ParseOptionalAmount is ParseAmount for fields where absence matters.
// It returns an invalid NullDecimal when the value is missing or not numeric.
func ParseOptionalAmount(raw any) decimal.NullDecimal {
	switch v := raw.(type) {
	case nil:
		return decimal.NullDecimal{}
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(v))
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	case decimal.Decimal, float32, int, int64:
		return decimal.NewNullDecimal(ParseAmount(v))
	default:
		return decimal.NullDecimal{}
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the date formats the record sources emit.
// Values without an offset are interpreted in loc. Unparsable or empty values yield nil.
func ParseDate(raw string, loc *time.Location) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, trimmed, loc)
		if err == nil {
			return &t
		}
	}
	return nil
}
