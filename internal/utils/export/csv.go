package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/utils"
)

// textCell quotes free text that a spreadsheet would otherwise evaluate as a formula.
func textCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

var transactionsHeader = []string{"id", "date", "description", "type", "amount", "direction", "owner"}

// WriteTransactionsCSV writes ledger transactions as CSV, dates rendered in loc.
func WriteTransactionsCSV(w io.Writer, txns []domain.LedgerTransaction, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionsHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, txn := range txns {
		date := ""
		if txn.Date != nil {
			date = txn.Date.In(loc).Format("2006-01-02")
		}
		direction := "out"
		if txn.Amount.IsPositive() {
			direction = "in"
		}
		record := []string{
			textCell(txn.ID),
			date,
			textCell(txn.Description),
			textCell(txn.Type),
			utils.FormatReportingAmount(txn.Amount),
			direction,
			textCell(txn.Owner),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", txn.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
