package utils

import (
	"github.com/shopspring/decimal"
)

// ReportingPrecision is the number of decimals amounts are rendered with in exports.
const ReportingPrecision = 2

// FormatWithPrecision formats an amount with a fixed number of decimals.
// Example: 12.3456 with precision 2 returns "12.35", 12 returns "12.00".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatReportingAmount formats an amount the way exports display it.
func FormatReportingAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, ReportingPrecision)
}
