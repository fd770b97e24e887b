package mailer

import (
	"testing"
	"time"

	"github.com/apexseekers/payslip-mailer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Asha Rao", "Payslip_Asha_Rao.pdf"},
		{"O'Brien, J. (Lead)", "Payslip_OBrien_J_Lead.pdf"},
		{"  padded  ", "Payslip_padded.pdf"},
		{"Employee#42", "Payslip_Employee42.pdf"},
		{"", "Payslip_.pdf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AttachmentFilename(tt.name), "input %q", tt.name)
	}
}

func TestSendRejectsIncompleteConfigBeforeDialing(t *testing.T) {
	m := New(config.SMTPSettings{}, "Example Corp")

	// With no host configured there is nothing to dial; the configuration
	// error must surface immediately instead.
	start := time.Now()
	err := m.Send("asha@x.com", "Asha Rao", []byte("%PDF-"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP configuration is missing or incomplete")
	assert.Less(t, time.Since(start), time.Second)
}

func TestMessageBody(t *testing.T) {
	body := messageBody("Asha Rao", "Example Corp", "March 2026")

	assert.Contains(t, body, "Dear Asha Rao,")
	assert.Contains(t, body, "your payslip for March 2026")
	assert.Contains(t, body, "Best Regards,\nExample Corp")
}
