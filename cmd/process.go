// =============================================================================
// Payslip Mailer - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs one payslip batch over
// a local payroll file without going through the HTTP API.
//
// COMMAND USAGE:
//   payslip-mailer process --file <path> [flags]
//
// PROCESSING PIPELINE:
//   1. Load configuration and validate the mail transport (fail fast)
//   2. Parse the payroll file into rows
//   3. For each row, in order:
//      a. Validate the email address (cheap syntactic check)
//      b. Build the payslip document
//      c. Render it to PDF
//      d. Email it to the employee
//   4. Print the per-row outcomes and a summary
//
// A failure in one row never stops the batch; the summary reports every row.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apexseekers/payslip-mailer/internal/ingest"
	"github.com/apexseekers/payslip-mailer/internal/types"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// payrollFile is the path to the payroll export to process.
var payrollFile string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Email payslips for a local payroll file",
	Long: `The process command reads a payroll export (CSV or XLSX) from disk, renders
a PDF payslip for every employee row and emails each one to the employee's
address.

Each row is processed independently: a bad address, a delivery failure or an
unexpected error is recorded for that row and the batch moves on. The command
exits non-zero only for batch-level problems (unreadable file, missing
required columns, incomplete SMTP configuration).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcessFile()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&payrollFile,
		"file",
		"",
		"Path to the payroll export to process (CSV or XLSX)",
	)
	processCmd.MarkFlagRequired("file")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcessFile runs one batch over the file named by --file.
func runProcessFile() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	warnIfLogoMissing(cfg)

	data, err := os.ReadFile(payrollFile)
	if err != nil {
		return fmt.Errorf("failed to read payroll file: %w", err)
	}

	sheet, err := ingest.Parse(filepath.Base(payrollFile), data)
	if err != nil {
		return err
	}

	fmt.Println("=== Payslip Mailer ===")
	fmt.Printf("Processing %s (%d row(s))\n", sheet.SourceName, len(sheet.Records))

	result, err := newProcessor(cfg).Run(sheet)
	if err != nil {
		return err
	}

	for _, outcome := range result.Logs {
		switch outcome.Status {
		case types.StatusSent:
			fmt.Printf("  ✓ %s -> %s\n", outcome.Employee, outcome.Email)
		default:
			fmt.Printf("  ✗ %s [%s]: %s\n", outcome.Employee, outcome.Status, outcome.Reason)
		}
	}

	fmt.Println("\n=== Batch Complete ===")
	fmt.Printf("Batch ID:        %s\n", result.BatchID)
	fmt.Printf("Total records:   %d\n", result.TotalRecords)
	fmt.Printf("Sent:            %d\n", result.SentCount)
	fmt.Printf("Failed:          %d\n", result.FailedCount)

	return nil
}
