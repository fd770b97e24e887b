// =============================================================================
// Payslip Mailer - XLSX Ingest
// =============================================================================
//
// XLSX parsing for payroll exports via excelize. Only the first worksheet is
// read; payroll exports ship a single sheet with headers in the first row.
//
// =============================================================================

package ingest

import (
	"bytes"
	"fmt"

	"github.com/apexseekers/payslip-mailer/internal/types"
	"github.com/xuri/excelize/v2"
)

// parseXLSX reads workbook bytes into a Sheet.
func parseXLSX(data []byte) (*types.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return buildSheet(allRows)
}
