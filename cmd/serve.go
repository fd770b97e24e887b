// =============================================================================
// Payslip Mailer - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which runs the HTTP upload API.
//
// COMMAND USAGE:
//   payslip-mailer serve [flags]
//
// The server exposes a single route:
//   POST /generate-and-email-payslips/   (multipart field "file")
//
// Configuration is loaded and the mail transport validated before the server
// starts; a missing or incomplete SMTP configuration refuses to start rather
// than failing on the first upload.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/apexseekers/payslip-mailer/internal/config"
	"github.com/apexseekers/payslip-mailer/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP payroll upload API",
	Long: `The serve command starts the HTTP API. Uploading a payroll export (CSV or
XLSX) generates a PDF payslip per employee row, emails each one, and returns
the per-row outcome report as JSON.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe wires the pipeline and blocks serving HTTP.
func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	warnIfLogoMissing(cfg)

	srv := server.New(newProcessor(cfg), config.GetLogger())
	if err := srv.Run(cfg.Server.ListenAddr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
