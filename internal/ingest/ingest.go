// =============================================================================
// Payslip Mailer - Payroll File Ingest
// =============================================================================
//
// This module turns an uploaded payroll export (CSV or XLSX bytes) into a
// Sheet of string-keyed records. It owns the row-normalization boundary:
//
//   - column headers are whitespace-trimmed
//   - fully empty rows are skipped
//   - each data row becomes a map of header -> trimmed cell value
//   - a DOJ column, when present, is normalized to MM/DD/YYYY before any
//     record reaches the document builder (unparseable dates become empty)
//
// The format is chosen from the file extension. Anything other than CSV or
// XLSX is rejected up front.
//
// =============================================================================

package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/apexseekers/payslip-mailer/internal/types"
)

// dojColumn is the date-of-joining header normalized during ingest.
const dojColumn = "DOJ"

// dojOutputLayout is the fixed format the payslip layout expects.
const dojOutputLayout = "01/02/2006"

// dojInputLayouts are tried in order when normalizing a DOJ cell.
var dojInputLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// =============================================================================
// ENTRY POINT
// =============================================================================

// Parse reads a payroll export held in memory and returns its rows.
//
// PARAMETERS:
//   - filename: The original file name; its extension selects the parser.
//   - data: The raw file contents.
//
// RETURNS:
//   - A Sheet with trimmed headers and one Record per non-empty data row.
//   - An error for unsupported file types or malformed content.
func Parse(filename string, data []byte) (*types.Sheet, error) {
	var (
		sheet *types.Sheet
		err   error
	)

	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "csv":
		sheet, err = parseCSV(data)
	case "xlsx", "xls":
		sheet, err = parseXLSX(data)
	default:
		return nil, fmt.Errorf("invalid file type %q: only CSV and XLSX are supported", filepath.Ext(filename))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	sheet.SourceName = filepath.Base(filename)
	normalizeJoiningDates(sheet)

	return sheet, nil
}

// =============================================================================
// SHARED ROW HANDLING
// =============================================================================

// buildSheet converts raw rows (headers first) into a Sheet.
// The first row supplies the headers; remaining rows become records.
func buildSheet(allRows [][]string) (*types.Sheet, error) {
	if len(allRows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	headers := cleanHeaders(allRows[0])

	records := make([]types.Record, 0, len(allRows)-1)
	for _, row := range allRows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rec := make(types.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = strings.TrimSpace(row[i])
			} else {
				// Column is missing in this row.
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}

	return &types.Sheet{
		Headers: headers,
		Records: records,
	}, nil
}

// cleanHeaders trims header values and names blank headers by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// DATE NORMALIZATION
// =============================================================================

// normalizeJoiningDates rewrites the DOJ column to MM/DD/YYYY in place.
// Cells that cannot be parsed with any known layout become empty rather than
// carrying an arbitrary string into the rendered document.
func normalizeJoiningDates(sheet *types.Sheet) {
	if !sheet.HasColumn(dojColumn) {
		return
	}

	for _, rec := range sheet.Records {
		rec[dojColumn] = normalizeDate(rec[dojColumn])
	}
}

// normalizeDate converts a single date cell, returning "" when no layout matches.
func normalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, layout := range dojInputLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(dojOutputLayout)
		}
	}
	return ""
}
