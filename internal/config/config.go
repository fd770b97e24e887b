// =============================================================================
// Payslip Mailer - Configuration Module
// =============================================================================
//
// This module is responsible for loading and validating the application
// configuration. Configuration comes from two places, applied in order:
//
//   1. A YAML file (config.yaml by default) for company identity, the logo
//      asset path, the listen address and the log level.
//   2. Environment variables (optionally via a .env file) for the SMTP
//      transport. Credentials never belong in the YAML file.
//
// The SMTP section has a defined lifecycle: it is loaded once at startup and
// validated before any payroll row is processed. An absent or incomplete
// transport configuration is a fatal startup error, not a per-row failure.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// CompanySettings identifies the employer on every rendered payslip.
type CompanySettings struct {
	// Name is printed in the payslip header and signs the mail body.
	Name string `yaml:"name"`

	// Address is printed under the company name. Newlines are preserved.
	Address string `yaml:"address"`

	// LogoFile is the path to the logo image placed in the payslip header.
	// The file is optional: when it is missing the payslip renders a textual
	// "LOGO MISSING" placeholder instead of failing.
	LogoFile string `yaml:"logo_file"`
}

// SMTPSettings configures the mail relay used to deliver payslips.
// All fields are required; validation happens once at startup.
type SMTPSettings struct {
	// Sender is the From address and also the authentication user.
	Sender string `yaml:"sender" validate:"required,email"`

	// Password is the authentication secret. Supplied via SMTP_PASSWORD.
	Password string `yaml:"password" validate:"required"`

	// Host is the relay host name.
	Host string `yaml:"host" validate:"required"`

	// Port is the relay port. STARTTLS is negotiated on the connection.
	Port int `yaml:"port" validate:"required,gt=0"`
}

// ServerSettings configures the HTTP upload API.
type ServerSettings struct {
	// ListenAddr is the address the gin server binds to.
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the process-wide application configuration.
type Config struct {
	Company CompanySettings `yaml:"company"`
	SMTP    SMTPSettings    `yaml:"smtp"`
	Server  ServerSettings  `yaml:"server"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, applies defaults and environment
// overrides, and returns the assembled configuration.
//
// PARAMETERS:
//   - configPath: The path to the YAML configuration file. A missing file is
//     not an error; defaults plus environment variables are used instead.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file exists but cannot be parsed.
func Load(configPath string) (*Config, error) {
	// Pick up a .env file when present. A missing .env is normal in
	// production where the environment is set by the supervisor.
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// Run on defaults and environment only.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// The company block defaults to the Apex Seekers identity the payslip layout
// was designed for.
func applyDefaults(cfg *Config) {
	if cfg.Company.Name == "" {
		cfg.Company.Name = "Apex seekers edtech private limited"
	}
	if cfg.Company.Address == "" {
		cfg.Company.Address = "Guna Complex, NewNo.443 & 445, Old No 304 & 305,\n" +
			"1st Floor, Anna Salai, Teynampet, Chennai - 600 018."
	}
	if cfg.Company.LogoFile == "" {
		cfg.Company.LogoFile = "Apex Seekers Logo.png"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// applyEnvOverrides lets the environment override the SMTP transport fields.
// Recognized variables: SMTP_SENDER, SMTP_PASSWORD, SMTP_HOST, SMTP_PORT.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SMTP_SENDER"); v != "" {
		cfg.SMTP.Sender = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// validate is shared; validator instances cache struct metadata.
var validate = validator.New()

// ValidateSMTP checks that the mail transport configuration is complete.
// Callers treat a returned error as fatal and must not start a batch.
func (c *Config) ValidateSMTP() error {
	return c.SMTP.Validate()
}

// Validate checks the transport settings against their field constraints and
// reports every incomplete field in one readable message.
func (s SMTPSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var missing []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				missing = append(missing, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("SMTP configuration is missing or incomplete: %s", strings.Join(missing, ", "))
		}
		return fmt.Errorf("SMTP configuration is invalid: %w", err)
	}
	return nil
}
