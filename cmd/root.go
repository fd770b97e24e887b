// =============================================================================
// Payslip Mailer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'serve', 'process') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (payslip-mailer)
//   ├── serveCmd   (payslip-mailer serve)
//   ├── processCmd (payslip-mailer process)
//   └── versionCmd (payslip-mailer version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/apexseekers/payslip-mailer/internal/batch"
	"github.com/apexseekers/payslip-mailer/internal/config"
	"github.com/apexseekers/payslip-mailer/internal/mailer"
	"github.com/apexseekers/payslip-mailer/internal/payslip"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "payslip-mailer",

	Short: "Payslip Mailer - Generate and email pay slips from a payroll export",

	Long: `Payslip Mailer ingests a tabular payroll export (CSV or XLSX), renders a
fixed-layout PDF pay slip for every employee row, and emails each slip to the
employee's address.

A failure for one employee never aborts the batch: every row produces its own
outcome (Sent, Skipped, Failed or Error) and the full per-row report is
returned when the batch completes.

Example Usage:
  payslip-mailer serve                       # Run the HTTP upload API
  payslip-mailer process --file payroll.csv  # Email payslips for a local file
  payslip-mailer serve --config ./my.yaml    # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags available to all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED WIRING
// =============================================================================

// loadConfig loads the configuration, applies the log level and verifies the
// mail transport. Every command that processes rows goes through here, so an
// incomplete SMTP configuration is fatal before any row is attempted.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	config.ApplyLogLevel(cfg.LogLevel, verbose)

	if err := cfg.ValidateSMTP(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newProcessor assembles the batch pipeline from the configuration.
func newProcessor(cfg *config.Config) *batch.Processor {
	opts := payslip.Options{
		CompanyName:    cfg.Company.Name,
		CompanyAddress: cfg.Company.Address,
		LogoFile:       cfg.Company.LogoFile,
	}

	dispatcher := mailer.New(cfg.SMTP, cfg.Company.Name)

	return batch.New(opts, dispatcher, config.GetLogger())
}

// warnIfLogoMissing points out a missing logo asset at startup. Payslips
// still render with a placeholder block, so this is a warning, not an error.
func warnIfLogoMissing(cfg *config.Config) {
	if _, err := os.Stat(cfg.Company.LogoFile); os.IsNotExist(err) {
		config.GetLogger().WithField("logo_file", cfg.Company.LogoFile).
			Warn("logo file is missing; payslips will show a LOGO MISSING placeholder")
	}
}
