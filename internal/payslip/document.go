// =============================================================================
// Payslip Mailer - Payslip Document Model
// =============================================================================
//
// This module builds the renderer-agnostic description of one payslip from a
// single payroll record. The visual contract is fixed: a header block with
// the company identity and pay month, a 7-row employee info grid, a combined
// earnings/deductions grid, a net-pay block, and a static border/disclaimer
// overlay repeated on every page.
//
// All layout metrics (column widths, row heights, font emphasis, alignment)
// are fixed constants expressed in points. Nothing here performs I/O and no
// formatting decision is deferred to the renderer: every cell value has
// already passed through the field-normalization functions by the time it is
// placed in the document.
//
// =============================================================================

package payslip

import (
	"strings"
	"time"

	"github.com/apexseekers/payslip-mailer/internal/fields"
	"github.com/apexseekers/payslip-mailer/internal/types"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

// All measurements are in points (1 inch = 72 points) on an A4 page.
const (
	pageWidth  = 595.28
	pageMargin = 25.0

	// contentWidth is the width of the bordered content area.
	contentWidth = pageWidth - 2*pageMargin

	// boxHeight is the height of the static border box.
	boxHeight = 480.0

	// borderLineWidth is the stroke width of the border box.
	borderLineWidth = 2.5

	// disclaimerOffset is how far below the border the disclaimer sits.
	disclaimerOffset = 15.0

	logoWidth  = 1.3 * 72
	logoHeight = 0.7 * 72

	headerLogoColWidth = 1.5 * 72
	headerTextColWidth = 5.5 * 72

	infoRowHeight      = 16.0
	financialRowHeight = 18.0
	netPayRowHeight    = 16.0

	spacerAfterHeader    = 0.15 * 72
	spacerAfterInfo      = 0.1 * 72
	spacerAfterFinancial = 0.2 * 72
)

// disclaimerText is anchored below the border box on every page.
const disclaimerText = "This is a computer-generated pay slip and does not require a signature or any company seal."

var (
	infoColWidths      = []float64{1.3 * 72, 2.5 * 72, 1.2 * 72, 2.3 * 72}
	financialColWidths = []float64{2.4 * 72, 0.9 * 72, 0.9 * 72, 2.4 * 72, 0.9 * 72}
	netPayColWidths    = []float64{1.5 * 72, 6.0 * 72}
)

// =============================================================================
// BLOCK DESCRIPTORS
// =============================================================================

// Cell is one grid cell with its layout hints.
type Cell struct {
	Text  string
	Width float64

	// Align is "L", "C" or "R".
	Align string

	Bold bool
}

// Row is one grid row. Rules are the 1.5pt horizontal lines drawn across the
// full grid width, used by the financial grid's header and summary rows.
type Row struct {
	Cells     []Cell
	RuleAbove bool
	RuleBelow bool
}

// Grid is an ordered list of rows sharing a row height.
type Grid struct {
	Rows      []Row
	RowHeight float64

	// SpaceBefore is vertical whitespace inserted ahead of the grid.
	SpaceBefore float64
}

// Header is the top block: logo slot, company identity and the month title.
type Header struct {
	// LogoFile is the path to the logo asset. When the file does not exist
	// the renderer draws a "LOGO MISSING" placeholder instead of failing.
	LogoFile string

	CompanyName string

	// AddressLines is the company address split into display lines.
	AddressLines []string

	// Title is the pay-month line, e.g.
	// "(PAYSLIP FOR THE MONTH OF MARCH 2026 )".
	Title string

	LogoColWidth float64
	TextColWidth float64
	LogoWidth    float64
	LogoHeight   float64
}

// Overlay is the static frame drawn identically on every page.
type Overlay struct {
	BoxX      float64
	BoxY      float64
	BoxWidth  float64
	BoxHeight float64
	LineWidth float64

	// Disclaimer is centered DisclaimerY points from the top of the page.
	Disclaimer  string
	DisclaimerY float64
}

// Document is the complete payslip description, consumed once by the
// renderer. It is immutable once built and structurally identical for equal
// inputs.
type Document struct {
	Header    Header
	Info      Grid
	Financial Grid
	NetPay    Grid
	Overlay   Overlay
}

// =============================================================================
// FINANCIAL LINE DEFINITIONS
// =============================================================================

// earningLine maps one earnings row to its source fields. FixedField is empty
// for earnings that have no fixed component (Incentive, Claim, On Duty,
// Other); those cells render blank rather than "0".
type earningLine struct {
	Label       string
	FixedField  string
	EarnedField string
}

// deductionLine maps one deductions row to its source field.
type deductionLine struct {
	Label string
	Field string
}

var earningLines = []earningLine{
	{"BASIC", "BASIC_FIXED", "BASIC_EARNED"},
	{"HRA", "HRA_FIXED", "HRA_EARNED"},
	{"CONVEYANCE ALLOWANCE", "CONVEYANCE_FIXED", "CONVEYANCE_EARNED"},
	{"MEDICAL REIMBURSE", "MEDICAL_FIXED", "MEDICAL_EARNED"},
	{"LEAVE TRAVEL ALLOWANCE", "LTA_FIXED", "LTA_EARNED"},
	{"SPECIAL ALLOWANCE", "SPECIAL_FIXED", "SPECIAL_EARNED"},
	{"INCENTIVE", "", "INCENTIVE"},
	{"CLAIM", "", "CLAIM"},
	{"ON DUTY", "", "ON_DUTY"},
	{"OTHER EARNINGS", "", "OTHER_EARNINGS"},
}

var deductionLines = []deductionLine{
	{"PF AMOUNT", "PF_AMOUNT"},
	{"ESIC", "ESIC_DED"},
	{"PROFESSIONAL TAX", "PROF_TAX"},
	{"OTHER DEDUCTION", "OTHER_DED"},
}

// =============================================================================
// BUILDER
// =============================================================================

// Options carries the per-deployment inputs of the document builder.
type Options struct {
	CompanyName    string
	CompanyAddress string
	LogoFile       string

	// Now supplies the pay month printed on the slip and in nothing else.
	// Injectable so document construction stays deterministic under test.
	Now time.Time
}

// BuildDocument constructs the payslip description for one employee record.
//
// PARAMETERS:
//   - rec: The normalized payroll row. Read-only; every value is accessed
//     through SafeGet or FormatCurrency.
//   - opts: Company identity, logo path and the pay month clock.
//
// RETURNS:
//   - The complete Document, ready for rendering.
func BuildDocument(rec types.Record, opts Options) *Document {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	monthYear := strings.ToUpper(now.Format("January 2006"))

	return &Document{
		Header: Header{
			LogoFile:     opts.LogoFile,
			CompanyName:  opts.CompanyName,
			AddressLines: strings.Split(opts.CompanyAddress, "\n"),
			Title:        "(PAYSLIP FOR THE MONTH OF " + monthYear + " )",
			LogoColWidth: headerLogoColWidth,
			TextColWidth: headerTextColWidth,
			LogoWidth:    logoWidth,
			LogoHeight:   logoHeight,
		},
		Info:      buildInfoGrid(rec),
		Financial: buildFinancialGrid(rec),
		NetPay:    buildNetPayGrid(rec),
		Overlay: Overlay{
			BoxX:        pageMargin,
			BoxY:        pageMargin,
			BoxWidth:    contentWidth,
			BoxHeight:   boxHeight,
			LineWidth:   borderLineWidth,
			Disclaimer:  disclaimerText,
			DisclaimerY: pageMargin + boxHeight + disclaimerOffset,
		},
	}
}

// buildInfoGrid produces the fixed 7-row employee info grid. Labels are
// constants; every value degrades to "-" via SafeGet.
func buildInfoGrid(rec types.Record) Grid {
	pairs := [][4]string{
		{"EMP id", fields.SafeGet(rec, "EMP_ID"), "Name", fields.SafeGet(rec, "NAME")},
		{"Designation", fields.SafeGet(rec, "DESIGNATION"), "Department", fields.SafeGet(rec, "DEPARTMENT")},
		{"Date of joining", fields.SafeGet(rec, "DOJ"), "Location", fields.SafeGet(rec, "LOCATION")},
		{"UAN no", fields.SafeGet(rec, "UAN"), "PAN no", fields.SafeGet(rec, "PAN")},
		{"ESIC no", fields.SafeGet(rec, "ESIC"), "Bank a/c no", fields.SafeGet(rec, "BANK_AC_NO")},
		{"Paid days", fields.SafeGet(rec, "PAID_DAYS"), "Lop days", fields.SafeGet(rec, "LOP_DAYS")},
		{"Leave taken", fields.SafeGet(rec, "LEAVE_TAKEN"), "Bal leave", fields.SafeGet(rec, "BAL_LEAVE")},
	}

	rows := make([]Row, len(pairs))
	for i, p := range pairs {
		cells := make([]Cell, 4)
		for j, text := range p {
			cells[j] = Cell{Text: text, Width: infoColWidths[j], Align: "L"}
		}
		rows[i] = Row{Cells: cells}
	}

	return Grid{Rows: rows, RowHeight: infoRowHeight, SpaceBefore: spacerAfterHeader}
}

// buildFinancialGrid merges the earnings and deductions lists row by row.
// The two lists are independently sized; when one runs out its cells render
// blank for the remaining rows. A bold summary row carries the upstream
// gross and deduction totals.
func buildFinancialGrid(rec types.Record) Grid {
	header := financialRow(
		[5]string{"EARNINGS", "Fixed", "Earned", "DEDUCTIONS", "Amount"},
		true, true, true,
	)

	maxLen := len(earningLines)
	if len(deductionLines) > maxLen {
		maxLen = len(deductionLines)
	}

	rows := []Row{header}
	for i := 0; i < maxLen; i++ {
		var texts [5]string

		if i < len(earningLines) {
			line := earningLines[i]
			texts[0] = line.Label
			if line.FixedField != "" {
				texts[1] = fields.FormatCurrency(rec[line.FixedField])
			}
			texts[2] = fields.FormatCurrency(rec[line.EarnedField])
		}

		if i < len(deductionLines) {
			line := deductionLines[i]
			texts[3] = line.Label
			texts[4] = fields.FormatCurrency(rec[line.Field])
		}

		rows = append(rows, financialRow(texts, false, false, false))
	}

	summary := financialRow(
		[5]string{
			"GROSS TOTAL", "", fields.FormatCurrency(rec["GROSS_TOTAL"]),
			"DEDUCTION TOTAL", fields.FormatCurrency(rec["DEDUCTION_TOTAL"]),
		},
		true, true, true,
	)
	rows = append(rows, summary)

	return Grid{Rows: rows, RowHeight: financialRowHeight, SpaceBefore: spacerAfterInfo}
}

// financialRow lays out one five-column financial row. Amount columns are
// right-aligned, label columns left-aligned.
func financialRow(texts [5]string, bold, ruleAbove, ruleBelow bool) Row {
	aligns := [5]string{"L", "R", "R", "L", "R"}

	cells := make([]Cell, 5)
	for i, text := range texts {
		cells[i] = Cell{
			Text:  text,
			Width: financialColWidths[i],
			Align: aligns[i],
			Bold:  bold,
		}
	}

	return Row{Cells: cells, RuleAbove: ruleAbove, RuleBelow: ruleBelow}
}

// buildNetPayGrid produces the two-row net pay block. The in-words line keeps
// its leading colon even when the upstream words column is absent.
func buildNetPayGrid(rec types.Record) Grid {
	words := fields.SafeGetDefault(rec, "NET_PAY_IN_WORDS", "")

	rows := []Row{
		{Cells: []Cell{
			{Text: "NET PAY", Width: netPayColWidths[0], Align: "L", Bold: true},
			{Text: fields.FormatCurrency(rec["NET_PAY"]), Width: netPayColWidths[1], Align: "L"},
		}},
		{Cells: []Cell{
			{Text: "In Words", Width: netPayColWidths[0], Align: "L", Bold: true},
			{Text: ":" + words, Width: netPayColWidths[1], Align: "L"},
		}},
	}

	return Grid{Rows: rows, RowHeight: netPayRowHeight, SpaceBefore: spacerAfterFinancial}
}
