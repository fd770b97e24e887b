package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	data := []byte(" NAME , EMAIL ,NET_PAY,EMP_ID,DOJ\n" +
		"Asha Rao,asha@x.com,45000.6,E1,2021-03-15\n" +
		"\n" +
		"Dev Kumar,dev@x.com,52000,E2,15-Mar-2021\n")

	sheet, err := Parse("payroll.csv", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"NAME", "EMAIL", "NET_PAY", "EMP_ID", "DOJ"}, sheet.Headers)
	assert.Equal(t, "payroll.csv", sheet.SourceName)

	// The blank line is skipped.
	require.Len(t, sheet.Records, 2)
	assert.Equal(t, "Asha Rao", sheet.Records[0]["NAME"])
	assert.Equal(t, "45000.6", sheet.Records[0]["NET_PAY"])

	// DOJ is normalized to MM/DD/YYYY.
	assert.Equal(t, "03/15/2021", sheet.Records[0]["DOJ"])
	assert.Equal(t, "03/15/2021", sheet.Records[1]["DOJ"])
}

func TestParseCSVShortRowsPadded(t *testing.T) {
	data := []byte("NAME,EMAIL,NET_PAY\nAsha Rao,asha@x.com\n")

	sheet, err := Parse("p.csv", data)
	require.NoError(t, err)

	require.Len(t, sheet.Records, 1)
	assert.Equal(t, "", sheet.Records[0]["NET_PAY"])
}

func TestParseCSVBlankHeaderGetsPositionalName(t *testing.T) {
	data := []byte("NAME,,EMAIL\nAsha,x,asha@x.com\n")

	sheet, err := Parse("p.csv", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"NAME", "Column_2", "EMAIL"}, sheet.Headers)
	assert.Equal(t, "x", sheet.Records[0]["Column_2"])
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse("payroll.pdf", []byte("whatever"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only CSV and XLSX are supported")
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse("payroll.csv", nil)
	assert.Error(t, err)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	rows := [][]interface{}{
		{"NAME", "EMAIL", "NET_PAY", "EMP_ID"},
		{"Asha Rao", "asha@x.com", 45000.6, "E1"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	sheet, err := Parse("payroll.xlsx", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"NAME", "EMAIL", "NET_PAY", "EMP_ID"}, sheet.Headers)
	require.Len(t, sheet.Records, 1)
	assert.Equal(t, "Asha Rao", sheet.Records[0]["NAME"])
	assert.Equal(t, "45000.6", sheet.Records[0]["NET_PAY"])
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2021-03-15", "03/15/2021"},
		{"3/5/2021", "03/05/2021"},
		{"15-Mar-2021", "03/15/2021"},
		{"not a date", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDate(tt.raw), "input %q", tt.raw)
	}
}
