// Package cli wires the normalization pipeline to a cobra command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"csvnorm/internal/config"
	"csvnorm/internal/core"
	"csvnorm/internal/logging"
)

// Version is stamped at build time.
var Version = "dev"

// NewRootCmd builds the csvnorm command. Flag defaults come from the
// environment-backed config, so flags always win over env vars.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvnorm [file.csv ...]",
		Short: "Normalize transactional CSV files into a canonical record schema",
		Long: `csvnorm reads transactional CSV files of varying delimiter, header
presence, and number/date locale, and emits normalized records with the
canonical fields: transaction_date, description, amount, currency, status.`,
		Version:       Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&cfg.Input.Delimiter, "delimiter", "d", cfg.Input.Delimiter,
		`force the field delimiter (",", ";", "|", "tab"; default: detect)`)
	fl.StringVar(&cfg.Input.Header, "header", cfg.Input.Header,
		"header presence: auto, true, or false")
	fl.StringVar(&cfg.Input.DefaultCurrency, "default-currency", cfg.Input.DefaultCurrency,
		"ISO currency code used when the currency column is absent")
	fl.BoolVar(&cfg.Input.Strict, "strict", cfg.Input.Strict,
		"abort the run on the first bad row or file")
	fl.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format,
		"output format: jsonl or table")
	fl.StringVarP(&cfg.Output.Path, "output", "o", cfg.Output.Path,
		"write records to a file instead of stdout")
	fl.StringVar(&cfg.Output.FailedRows, "failed-out", cfg.Output.FailedRows,
		"write rejected rows to a review CSV")
	fl.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level,
		"log level: debug, info, warn, error")
	fl.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format,
		"log format: text or json")

	return cmd
}

// run executes the pipeline over every argument and reports the
// combined outcome. A non-nil return makes the process exit non-zero.
func run(cmd *cobra.Command, cfg *config.Config, paths []string) error {
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	opts := core.Options{
		DelimiterOverride: cfg.DelimiterRune(),
		HeaderOverride:    cfg.HeaderOverride(),
		DefaultCurrency:   cfg.NormalizedDefaultCurrency(),
		Strict:            cfg.Input.Strict,
	}

	proc := core.NewProcessor(opts, logger)
	reports, runErr := proc.Process(cmd.Context(), paths)

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	failedFiles := 0
	failedRows := 0
	for _, report := range reports {
		if report.Fatal != nil {
			failedFiles++
			continue
		}
		failedRows += len(report.RowErrors)
		if err := core.WriteRecords(out, cfg.Output.Format, report.Records); err != nil {
			return err
		}
	}

	if cfg.Output.FailedRows != "" {
		if err := core.WriteFailedRows(cfg.Output.FailedRows, reports); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}
	if failedFiles > 0 || failedRows > 0 {
		return fmt.Errorf("%d file(s) and %d row(s) failed validation", failedFiles, failedRows)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(cfg *config.Config) int {
	cmd := NewRootCmd(cfg)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "csvnorm:", err)
		return 1
	}
	return 0
}
