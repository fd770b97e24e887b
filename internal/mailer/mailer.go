// =============================================================================
// Payslip Mailer - Delivery Dispatcher
// =============================================================================
//
// This module composes the payslip message and hands it to the SMTP relay.
// One call to Send is one complete delivery attempt: the session is dialed,
// authenticated over STARTTLS, used for a single message and closed on every
// exit path. Sessions are never pooled or reused across rows.
//
// An incomplete transport configuration is detected and reported before any
// connection is attempted, so misconfiguration surfaces as a distinct,
// immediate failure rather than a confusing network error.
//
// =============================================================================

package mailer

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/apexseekers/payslip-mailer/internal/config"
	"gopkg.in/gomail.v2"
)

// attachmentExt is the extension of the rendered payslip attachment.
const attachmentExt = ".pdf"

// =============================================================================
// MAILER
// =============================================================================

// Mailer delivers rendered payslips through a configured SMTP relay.
type Mailer struct {
	smtp    config.SMTPSettings
	company string

	// now is injectable so the subject and body month are testable.
	now func() time.Time
}

// New creates a Mailer for the given transport settings and company identity.
func New(smtp config.SMTPSettings, companyName string) *Mailer {
	return &Mailer{
		smtp:    smtp,
		company: companyName,
		now:     time.Now,
	}
}

// Send composes and delivers one payslip message.
//
// PARAMETERS:
//   - to: The destination address.
//   - name: The employee display name used in the body greeting and the
//     attachment filename.
//   - doc: The rendered PDF bytes.
//
// RETURNS:
//   - nil when the relay accepted the message.
//   - An error whose message is the human-readable failure reason otherwise.
//     Send never panics past this boundary.
func (m *Mailer) Send(to, name string, doc []byte) error {
	// Fail before touching the network when the transport is misconfigured.
	if err := m.smtp.Validate(); err != nil {
		return err
	}

	monthYear := m.now().Format("January 2006")

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.smtp.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Payslip - "+monthYear)
	msg.SetBody("text/plain", messageBody(name, m.company, monthYear))
	msg.Attach(AttachmentFilename(name), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(doc)
		return err
	}))

	// DialAndSend negotiates STARTTLS, authenticates, transmits and closes
	// the session whether or not the send succeeds.
	dialer := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.Sender, m.smtp.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send payslip to %s: %w", to, err)
	}

	return nil
}

// messageBody renders the plain-text body addressed to the employee.
func messageBody(name, company, monthYear string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nPlease find attached your payslip for %s.\n\nBest Regards,\n%s",
		name, monthYear, company,
	)
}

// =============================================================================
// ATTACHMENT NAMING
// =============================================================================

// AttachmentFilename derives the attachment name from an employee display
// name: everything except letters, digits and spaces is stripped, the result
// is trimmed, and spaces become underscores.
//
// Example: "O'Brien, J. (Lead)" -> "Payslip_OBrien_J_Lead.pdf"
func AttachmentFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	safe := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	return "Payslip_" + safe + attachmentExt
}
