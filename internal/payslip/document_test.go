package payslip

import (
	"testing"
	"time"

	"github.com/apexseekers/payslip-mailer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpts = Options{
	CompanyName:    "Apex seekers edtech private limited",
	CompanyAddress: "Line one\nLine two",
	LogoFile:       "logo.png",
	Now:            time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
}

func fullRecord() types.Record {
	return types.Record{
		"EMP_ID":          "E1",
		"NAME":            "Asha Rao",
		"EMAIL":           "asha@x.com",
		"NET_PAY":         "45000.6",
		"BASIC_EARNED":    "30000",
		"GROSS_TOTAL":     "45500.2",
		"DEDUCTION_TOTAL": "499.6",
	}
}

func TestBuildDocumentHeader(t *testing.T) {
	doc := BuildDocument(fullRecord(), testOpts)

	assert.Equal(t, "(PAYSLIP FOR THE MONTH OF MARCH 2026 )", doc.Header.Title)
	assert.Equal(t, "logo.png", doc.Header.LogoFile)
	assert.Equal(t, []string{"Line one", "Line two"}, doc.Header.AddressLines)
}

func TestBuildDocumentInfoGrid(t *testing.T) {
	doc := BuildDocument(fullRecord(), testOpts)

	require.Len(t, doc.Info.Rows, 7)

	first := doc.Info.Rows[0]
	require.Len(t, first.Cells, 4)
	assert.Equal(t, "EMP id", first.Cells[0].Text)
	assert.Equal(t, "E1", first.Cells[1].Text)
	assert.Equal(t, "Name", first.Cells[2].Text)
	assert.Equal(t, "Asha Rao", first.Cells[3].Text)

	// Absent optional fields fall back to the placeholder.
	second := doc.Info.Rows[1]
	assert.Equal(t, "Designation", second.Cells[0].Text)
	assert.Equal(t, "-", second.Cells[1].Text)
	assert.Equal(t, "-", second.Cells[3].Text)
}

func TestBuildDocumentFinancialGrid(t *testing.T) {
	doc := BuildDocument(fullRecord(), testOpts)

	// Header + 10 zipped rows (earnings list is the longer side) + summary.
	require.Len(t, doc.Financial.Rows, 12)

	header := doc.Financial.Rows[0]
	assert.Equal(t, "EARNINGS", header.Cells[0].Text)
	assert.Equal(t, "DEDUCTIONS", header.Cells[3].Text)
	assert.True(t, header.Cells[0].Bold)
	assert.True(t, header.RuleAbove)
	assert.True(t, header.RuleBelow)

	// BASIC has no BASIC_FIXED in the record: fixed column formats to "0",
	// earned column carries the amount.
	basic := doc.Financial.Rows[1]
	assert.Equal(t, "BASIC", basic.Cells[0].Text)
	assert.Equal(t, "0", basic.Cells[1].Text)
	assert.Equal(t, "30000", basic.Cells[2].Text)

	// INCENTIVE defines no fixed field at all, so its fixed cell is blank,
	// not "0".
	incentive := doc.Financial.Rows[7]
	assert.Equal(t, "INCENTIVE", incentive.Cells[0].Text)
	assert.Equal(t, "", incentive.Cells[1].Text)
	assert.Equal(t, "0", incentive.Cells[2].Text)

	// Deductions run out after four rows; their cells go blank.
	fifth := doc.Financial.Rows[5]
	assert.Equal(t, "", fifth.Cells[3].Text)
	assert.Equal(t, "", fifth.Cells[4].Text)

	summary := doc.Financial.Rows[11]
	assert.Equal(t, "GROSS TOTAL", summary.Cells[0].Text)
	assert.Equal(t, "45500", summary.Cells[2].Text)
	assert.Equal(t, "DEDUCTION TOTAL", summary.Cells[3].Text)
	assert.Equal(t, "500", summary.Cells[4].Text)
	assert.True(t, summary.RuleAbove)
	assert.True(t, summary.RuleBelow)
}

func TestBuildDocumentAmountColumnsRightAligned(t *testing.T) {
	doc := BuildDocument(fullRecord(), testOpts)

	for _, row := range doc.Financial.Rows {
		assert.Equal(t, "L", row.Cells[0].Align)
		assert.Equal(t, "R", row.Cells[1].Align)
		assert.Equal(t, "R", row.Cells[2].Align)
		assert.Equal(t, "L", row.Cells[3].Align)
		assert.Equal(t, "R", row.Cells[4].Align)
	}
}

func TestBuildDocumentNetPay(t *testing.T) {
	doc := BuildDocument(fullRecord(), testOpts)

	require.Len(t, doc.NetPay.Rows, 2)

	amount := doc.NetPay.Rows[0]
	assert.Equal(t, "NET PAY", amount.Cells[0].Text)
	assert.True(t, amount.Cells[0].Bold)
	assert.Equal(t, "45001", amount.Cells[1].Text)

	// The in-words line keeps its leading colon even with no words column.
	words := doc.NetPay.Rows[1]
	assert.Equal(t, "In Words", words.Cells[0].Text)
	assert.Equal(t, ":", words.Cells[1].Text)
}

func TestBuildDocumentNetPayInWords(t *testing.T) {
	rec := fullRecord()
	rec["NET_PAY_IN_WORDS"] = "Forty five thousand and one"

	doc := BuildDocument(rec, testOpts)
	assert.Equal(t, ":Forty five thousand and one", doc.NetPay.Rows[1].Cells[1].Text)
}

func TestBuildDocumentOverlay(t *testing.T) {
	doc := BuildDocument(fullRecord(), testOpts)

	o := doc.Overlay
	assert.Equal(t, pageMargin, o.BoxX)
	assert.Equal(t, pageMargin, o.BoxY)
	assert.Equal(t, contentWidth, o.BoxWidth)
	assert.Equal(t, boxHeight, o.BoxHeight)
	assert.Contains(t, o.Disclaimer, "computer-generated")
	assert.Greater(t, o.DisclaimerY, o.BoxY+o.BoxHeight)
}

func TestBuildDocumentIdempotent(t *testing.T) {
	rec := fullRecord()

	first := BuildDocument(rec, testOpts)
	second := BuildDocument(rec, testOpts)

	assert.Equal(t, first, second)
}
