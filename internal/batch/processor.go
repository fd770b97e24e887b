// =============================================================================
// Payslip Mailer - Batch Processor
// =============================================================================
//
// This module runs the per-row pipeline over a parsed payroll sheet:
//
//   Received -> Validated -> Rendered -> Dispatched -> {Sent | Failed}
//
// with short-circuit exits to Skipped (bad address) and Error (anything
// unexpected in the row). Isolation of per-row failure is the central
// invariant: nothing that happens while building, rendering or dispatching
// one employee's payslip may stop the batch. Every row always produces
// exactly one outcome, appended in input order.
//
// Rows are processed sequentially. The outcomes log and the counters are
// owned exclusively by the processor and updated after each row completes,
// so no synchronization is needed.
//
// =============================================================================

package batch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/apexseekers/payslip-mailer/internal/fields"
	"github.com/apexseekers/payslip-mailer/internal/payslip"
	"github.com/apexseekers/payslip-mailer/internal/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// requiredColumns must all be present in the sheet before any row is
// processed; a missing one aborts the entire batch.
var requiredColumns = []string{"NAME", "EMAIL", "NET_PAY", "EMP_ID"}

// =============================================================================
// DISPATCHER CONTRACT
// =============================================================================

// Dispatcher delivers one rendered payslip to one address. A returned error
// is the delivery failure reason; implementations must not panic.
type Dispatcher interface {
	Send(to, name string, doc []byte) error
}

// =============================================================================
// PROCESSOR
// =============================================================================

// Processor turns parsed payroll rows into delivery outcomes.
type Processor struct {
	opts       payslip.Options
	dispatcher Dispatcher
	logger     *logrus.Logger

	// render is the document serializer, injectable under test.
	render func(*payslip.Document) (*bytes.Buffer, error)
}

// New creates a Processor.
//
// PARAMETERS:
//   - opts: Company identity and logo path passed to the document builder.
//   - dispatcher: The mail dispatcher that delivers rendered payslips.
//   - logger: Structured logger for per-row progress.
func New(opts payslip.Options, dispatcher Dispatcher, logger *logrus.Logger) *Processor {
	return &Processor{
		opts:       opts,
		dispatcher: dispatcher,
		logger:     logger,
		render:     payslip.Render,
	}
}

// =============================================================================
// BATCH RUN
// =============================================================================

// Run processes every row of the sheet in input order and returns the
// aggregate report.
//
// RETURNS:
//   - The BatchResult with one log entry per row, unless a batch-level
//     configuration error fired first.
//   - An error only for batch-level problems (missing required columns); in
//     that case zero rows were processed.
func (p *Processor) Run(sheet *types.Sheet) (*types.BatchResult, error) {
	if err := checkRequiredColumns(sheet); err != nil {
		return nil, err
	}

	result := &types.BatchResult{
		BatchID:      uuid.New().String(),
		TotalRecords: len(sheet.Records),
		Logs:         make([]types.Outcome, 0, len(sheet.Records)),
	}

	p.logger.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"source":   sheet.SourceName,
		"rows":     len(sheet.Records),
	}).Info("starting payslip batch")

	for i, rec := range sheet.Records {
		outcome := p.processRow(rec)
		result.Logs = append(result.Logs, outcome)

		if outcome.Status == types.StatusSent {
			result.SentCount++
		} else {
			result.FailedCount++
		}

		entry := p.logger.WithFields(logrus.Fields{
			"batch_id": result.BatchID,
			"row":      i + 1,
			"employee": outcome.Employee,
			"status":   outcome.Status.String(),
		})
		if outcome.Status == types.StatusSent {
			entry.Debug("payslip delivered")
		} else {
			entry.WithField("reason", outcome.Reason).Warn("payslip not delivered")
		}
	}

	p.logger.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"sent":     result.SentCount,
		"failed":   result.FailedCount,
	}).Info("payslip batch complete")

	return result, nil
}

// checkRequiredColumns fails fast when the sheet cannot be processed at all.
func checkRequiredColumns(sheet *types.Sheet) error {
	var missing []string
	for _, col := range requiredColumns {
		if !sheet.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required columns in the file: %s", strings.Join(missing, ", "))
	}
	return nil
}

// =============================================================================
// PER-ROW PIPELINE
// =============================================================================

// processRow runs one row through validate -> build -> render -> dispatch and
// maps the result to an outcome. It never lets a failure escape: errors
// become Failed or Error outcomes and a recovered panic becomes Error, so the
// caller can always continue with the next row.
func (p *Processor) processRow(rec types.Record) (outcome types.Outcome) {
	name := fields.SafeGetDefault(rec, "NAME", "N/A")
	email := strings.TrimSpace(rec["EMAIL"])

	defer func() {
		if r := recover(); r != nil {
			outcome = types.Outcome{
				Status:   types.StatusError,
				Employee: name,
				Reason:   fmt.Sprintf("%v", r),
			}
		}
	}()

	// Cheap syntactic check only; anything with an "@" is attempted and the
	// relay is the judge of the rest.
	if !strings.Contains(email, "@") {
		return types.Outcome{
			Status:   types.StatusSkipped,
			Employee: name,
			Reason:   "Bad Email",
		}
	}

	doc := payslip.BuildDocument(rec, p.opts)

	buf, err := p.render(doc)
	if err != nil {
		return types.Outcome{
			Status:   types.StatusError,
			Employee: name,
			Reason:   err.Error(),
		}
	}

	if err := p.dispatcher.Send(email, name, buf.Bytes()); err != nil {
		return types.Outcome{
			Status:   types.StatusFailed,
			Employee: name,
			Reason:   err.Error(),
		}
	}

	return types.Outcome{
		Status:   types.StatusSent,
		Employee: name,
		Email:    email,
	}
}
