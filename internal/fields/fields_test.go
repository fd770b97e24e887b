package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty string", "", "0"},
		{"whitespace only", "   ", "0"},
		{"literal dash placeholder", "-", "0"},
		{"padded dash placeholder", " - ", "0"},
		{"garbage text", "N/A", "0"},
		{"mixed alphanumeric", "12ab", "0"},
		{"integer string", "45000", "45000"},
		{"rounds up", "1234.6", "1235"},
		{"rounds down", "1234.4", "1234"},
		{"half rounds away from zero", "1234.5", "1235"},
		{"negative preserved", "-50", "-50"},
		{"negative fraction", "-49.7", "-50"},
		{"zero", "0", "0"},
		{"padded numeric", " 300.2 ", "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.raw))
		})
	}
}

func TestSafeGet(t *testing.T) {
	rec := map[string]string{
		"NAME":        "Asha Rao",
		"DESIGNATION": "",
		"DEPARTMENT":  "   ",
		"PAID_DAYS":   "30",
	}

	assert.Equal(t, "Asha Rao", SafeGet(rec, "NAME"))
	assert.Equal(t, "30", SafeGet(rec, "PAID_DAYS"))

	// Missing, empty and blank all fall back to the placeholder.
	assert.Equal(t, "-", SafeGet(rec, "LOCATION"))
	assert.Equal(t, "-", SafeGet(rec, "DESIGNATION"))
	assert.Equal(t, "-", SafeGet(rec, "DEPARTMENT"))
}

func TestSafeGetDefault(t *testing.T) {
	rec := map[string]string{"NET_PAY_IN_WORDS": ""}

	assert.Equal(t, "", SafeGetDefault(rec, "NET_PAY_IN_WORDS", ""))
	assert.Equal(t, "", SafeGetDefault(rec, "MISSING", ""))
	assert.Equal(t, "fallback", SafeGetDefault(rec, "MISSING", "fallback"))
}
