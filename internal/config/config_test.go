package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Apex seekers edtech private limited", cfg.Company.Name)
	assert.Equal(t, "Apex Seekers Logo.png", cfg.Company.LogoFile)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, ":8000", cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadReadsYAML(t *testing.T) {
	path := writeConfigFile(t, `
company:
  name: Example Corp
  logo_file: logo.png
server:
  listen_addr: ":9090"
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Example Corp", cfg.Company.Name)
	assert.Equal(t, "logo.png", cfg.Company.LogoFile)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Unset sections still get defaults.
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "company: [not a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesSMTP(t *testing.T) {
	t.Setenv("SMTP_SENDER", "payroll@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "payroll@example.com", cfg.SMTP.Sender)
	assert.Equal(t, "secret", cfg.SMTP.Password)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)

	require.NoError(t, cfg.ValidateSMTP())
}

func TestValidateSMTPReportsMissingFields(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	err := cfg.ValidateSMTP()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP configuration is missing or incomplete")
	assert.Contains(t, err.Error(), "sender")
	assert.Contains(t, err.Error(), "password")
	assert.Contains(t, err.Error(), "host")
}
