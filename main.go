// =============================================================================
// Payslip Mailer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Payslip Mailer application. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   payslip-mailer serve         - Run the HTTP upload API
//   payslip-mailer process       - Email payslips for a local payroll file
//   payslip-mailer version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//
// =============================================================================

package main

import (
	"github.com/apexseekers/payslip-mailer/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
