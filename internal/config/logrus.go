package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

// GetLogger returns the process-wide logger.
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// ApplyLogLevel sets the logger level from the configured string.
// Verbose forces debug regardless of the configured level.
func ApplyLogLevel(level string, verbose bool) {
	if verbose {
		logg.SetLevel(logrus.DebugLevel)
		return
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logg.SetLevel(logrus.InfoLevel)
		return
	}
	logg.SetLevel(parsed)
}
