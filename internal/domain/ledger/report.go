package ledger

import (
	"fmt"
	"strings"
	"time"
)

// csvHeader is the fixed first line of every exported report.
const csvHeader = "Date,Customer,Type,Amount,Description"

// FormatDisplayDate renders a date the way the rest of the system displays
// dates: day/month/year without zero padding (15/3/2024).
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// ExportCSV serializes an ordered transaction sequence to a CSV document.
// Every field is wrapped in double quotes and every row is newline
// terminated, so an empty set exports as just the header line. Missing
// customer names and descriptions become empty fields, not literal nulls.
// The document is built fully in memory; inputs are bounded to one
// business's ledger.
func ExportCSV(txs []*Transaction) []byte {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, tx := range txs {
		writeCSVRow(&b,
			FormatDisplayDate(tx.TransactionDate),
			tx.CustomerName,
			string(tx.Type),
			tx.Amount.String(),
			tx.Description,
		)
	}
	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// ExportFilename suggests a download name for a business's report.
func ExportFilename(businessName string) string {
	if businessName == "" {
		businessName = "report"
	}
	return businessName + "-transactions.csv"
}
