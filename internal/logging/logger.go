// Package logging configures the process-wide structured logger.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info").
// Format values: "text", "json" (default: "text").
//
// Logs go to stderr so normalized records on stdout stay pipeable.
func Setup(level, format string) *log.Logger {
	opts := log.Options{
		Level:           parseLevel(level),
		ReportTimestamp: true,
	}
	if strings.ToLower(format) == "json" {
		opts.Formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(os.Stderr, opts)
	log.SetDefault(logger)
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
