// =============================================================================
// Payslip Mailer - CSV Ingest
// =============================================================================
//
// CSV parsing for payroll exports. The reader is configured to be forgiving:
// exports from spreadsheet tools routinely carry inconsistent column counts,
// loose quoting and stray leading whitespace.
//
// =============================================================================

package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/apexseekers/payslip-mailer/internal/types"
)

// parseCSV reads CSV bytes into a Sheet.
func parseCSV(data []byte) (*types.Sheet, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	// Allow variable numbers of fields per row; short rows are padded with
	// empty values when the records are built.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true

	// Trim leading space from fields.
	reader.TrimLeadingSpace = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return buildSheet(allRows)
}
