// =============================================================================
// Payslip Mailer - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ingest
//   - payslip
//   - batch
//   - server
//
// =============================================================================

package types

// =============================================================================
// INPUT TYPES
// =============================================================================

// Record represents one parsed payroll row for a single employee.
// Keys are the trimmed column headers from the uploaded file; values are the
// raw cell contents as strings. Blank cells and columns missing from a short
// row are both present with an empty value.
//
// Records are read-only once parsed: the document builder and the batch
// processor never mutate them.
type Record map[string]string

// Sheet represents one parsed payroll file.
type Sheet struct {
	// Headers contains the column headers in file order, whitespace-trimmed.
	Headers []string

	// Records contains the data rows in file order.
	Records []Record

	// SourceName is the name of the uploaded or local file, used in logs.
	SourceName string
}

// HasColumn reports whether the sheet contains the given column header.
func (s *Sheet) HasColumn(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// OUTCOME TYPES
// =============================================================================

// Status is the per-row delivery status.
type Status string

const (
	// StatusSent means the payslip was rendered and accepted by the relay.
	StatusSent Status = "Sent"

	// StatusSkipped means the row was not attempted (bad email address).
	StatusSkipped Status = "Skipped"

	// StatusFailed means the dispatcher reported a delivery failure.
	StatusFailed Status = "Failed"

	// StatusError means an unexpected error occurred while building,
	// rendering or dispatching the payslip for this row.
	StatusError Status = "Error"
)

// String returns the status as a plain string.
func (s Status) String() string { return string(s) }

// Outcome is the result of attempting to produce and send one payslip.
// Sent outcomes carry the destination address; all other statuses carry a
// human-readable reason instead.
type Outcome struct {
	Status   Status `json:"status"`
	Employee string `json:"employee"`
	Email    string `json:"email,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// =============================================================================
// BATCH RESULT
// =============================================================================

// BatchResult is the aggregate report returned after processing an entire
// payroll file. Logs are in original row order and contain one entry per
// attempted row. Skipped, Failed and Error outcomes all count toward
// FailedCount.
type BatchResult struct {
	// BatchID identifies this run in logs and in the returned report.
	BatchID string `json:"batch_id"`

	// TotalRecords is the number of data rows in the uploaded file.
	TotalRecords int `json:"total_records"`

	// SentCount is the number of payslips accepted by the mail relay.
	SentCount int `json:"sent_count"`

	// FailedCount is the number of rows that did not result in a delivery.
	FailedCount int `json:"failed_count"`

	// Logs contains one outcome per row, in row order.
	Logs []Outcome `json:"logs"`
}
