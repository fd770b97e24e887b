// =============================================================================
// Payslip Mailer - Field Normalization
// =============================================================================
//
// This package contains the total functions that turn raw payroll cells into
// display-ready strings. Payroll exports are inconsistent - blank cells,
// stray dashes, mixed numeric formats - so every value that reaches the
// rendered document passes through one of these two functions, both of which
// always return a usable string and never fail.
//
//   - FormatCurrency : monetary cells, falls back to "0"
//   - SafeGet        : everything else, falls back to "-"
//
// =============================================================================

package fields

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPlaceholder is the fallback for non-monetary display fields.
const DefaultPlaceholder = "-"

// =============================================================================
// CURRENCY FORMATTING
// =============================================================================

// FormatCurrency normalizes a raw monetary cell to an integer amount string.
//
// Rules:
//   - absent, blank, or the literal placeholder "-" yields "0"
//   - otherwise the value is parsed as a decimal number, rounded to the
//     nearest integer (half away from zero) and returned without grouping
//     separators or decimals; negative amounts keep their sign
//   - anything unparseable yields "0"
func FormatCurrency(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return "0"
	}

	val, err := decimal.NewFromString(trimmed)
	if err != nil {
		return "0"
	}

	return val.Round(0).String()
}

// =============================================================================
// GENERIC FIELD ACCESS
// =============================================================================

// SafeGet returns the value of a field coerced to a display string, falling
// back to "-" when the field is missing or blank.
func SafeGet(rec map[string]string, field string) string {
	return SafeGetDefault(rec, field, DefaultPlaceholder)
}

// SafeGetDefault is SafeGet with a caller-supplied fallback. A field counts
// as blank when its value is empty after trimming whitespace; the returned
// value is the original, untrimmed cell content.
func SafeGetDefault(rec map[string]string, field, def string) string {
	val, ok := rec[field]
	if !ok {
		return def
	}
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}
