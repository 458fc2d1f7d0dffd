// Package config provides centralized configuration for csvnorm.
// Settings load from environment variables with defaults and are
// validated up front to fail fast on misconfiguration; CLI flags
// override whatever the environment supplied.
package config

import (
	"fmt"
	"strings"

	"csvnorm/internal/schema"
)

// Config holds all application configuration.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// InputConfig controls format detection and row policy.
type InputConfig struct {
	// Delimiter forces the field delimiter, bypassing detection.
	// One of "", ",", ";", "|", "tab" ("" = detect).
	Delimiter string `env:"CSVNORM_DELIMITER" default:""`

	// Header forces header presence: "auto", "true", or "false".
	Header string `env:"CSVNORM_HEADER" default:"auto"`

	// DefaultCurrency backfills a missing currency column with an ISO
	// code. Empty means the currency column is required.
	DefaultCurrency string `env:"CSVNORM_DEFAULT_CURRENCY" default:""`

	// Strict aborts the run on the first bad row or file instead of
	// skipping and reporting.
	Strict bool `env:"CSVNORM_STRICT" default:"false"`
}

// OutputConfig controls where and how records are emitted.
type OutputConfig struct {
	// Format is "jsonl" or "table".
	Format string `env:"CSVNORM_OUTPUT_FORMAT" default:"jsonl"`

	// Path writes records to a file instead of stdout when set.
	Path string `env:"CSVNORM_OUTPUT" default:""`

	// FailedRows writes rejected rows to a review CSV when set.
	FailedRows string `env:"CSVNORM_FAILED_OUT" default:""`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `env:"CSVNORM_LOG_LEVEL" default:"info"`

	// Format is "text" or "json".
	Format string `env:"CSVNORM_LOG_FORMAT" default:"text"`
}

// Validate checks configuration consistency. Called by Load after
// population and again by the CLI after flag overrides.
func (c *Config) Validate() error {
	switch c.Input.Delimiter {
	case "", ",", ";", "|", "tab", "\t":
	default:
		return fmt.Errorf("CSVNORM_DELIMITER: unsupported delimiter %q (use , ; | or tab)", c.Input.Delimiter)
	}

	switch strings.ToLower(c.Input.Header) {
	case "auto", "true", "false":
	default:
		return fmt.Errorf("CSVNORM_HEADER: must be auto, true, or false, got %q", c.Input.Header)
	}

	if cur := c.Input.DefaultCurrency; cur != "" {
		if _, ok := schema.NormalizeCurrency(cur); !ok {
			return fmt.Errorf("CSVNORM_DEFAULT_CURRENCY: unknown currency code %q", cur)
		}
	}

	switch c.Output.Format {
	case "jsonl", "table":
	default:
		return fmt.Errorf("CSVNORM_OUTPUT_FORMAT: must be jsonl or table, got %q", c.Output.Format)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("CSVNORM_LOG_LEVEL: unknown level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("CSVNORM_LOG_FORMAT: must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// DelimiterRune returns the forced delimiter as a rune, or 0 when
// detection should run.
func (c *Config) DelimiterRune() rune {
	switch c.Input.Delimiter {
	case "tab", "\t":
		return '\t'
	case "":
		return 0
	default:
		return rune(c.Input.Delimiter[0])
	}
}

// HeaderOverride returns the forced header presence, or nil for
// auto-detection.
func (c *Config) HeaderOverride() *bool {
	switch strings.ToLower(c.Input.Header) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// NormalizedDefaultCurrency returns the default currency uppercased,
// or empty when none is configured.
func (c *Config) NormalizedDefaultCurrency() string {
	if c.Input.DefaultCurrency == "" {
		return ""
	}
	code, _ := schema.NormalizeCurrency(c.Input.DefaultCurrency)
	return code
}
