package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options controls a normalization run. The zero value sniffs
// everything, requires a currency column, and skips bad rows.
type Options struct {
	// DelimiterOverride bypasses delimiter detection when non-zero.
	DelimiterOverride rune
	// HeaderOverride bypasses header detection when non-nil.
	HeaderOverride *bool
	// DefaultCurrency backfills a missing or empty currency column.
	// Empty means the currency column is required.
	DefaultCurrency string
	// Strict aborts the file on the first bad row, and the whole run
	// on the first failed file.
	Strict bool
}

// Processor runs the sniff → resolve → normalize pipeline over files.
// It holds no per-file state; every file's sniff result and column
// mapping live in that file's report.
type Processor struct {
	opts Options
	log  *log.Logger
}

// NewProcessor returns a Processor with the given options. logger may
// be nil, in which case the default logger is used.
func NewProcessor(opts Options, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{opts: opts, log: logger}
}

// Process runs every file in order and returns one report per file
// attempted. Under Strict the run stops at the first file that fails;
// otherwise a failed file is reported and processing moves on.
func (p *Processor) Process(ctx context.Context, paths []string) ([]*FileReport, error) {
	reports := make([]*FileReport, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return reports, fmt.Errorf("run cancelled: %w", err)
		}

		report := p.ProcessFile(ctx, path)
		reports = append(reports, report)

		if p.opts.Strict && !report.OK() {
			return reports, fmt.Errorf("strict mode: aborting run after %s", path)
		}
	}
	return reports, nil
}

// ProcessFile normalizes a single file start to finish. All failures
// land in the report; the caller decides run policy.
func (p *Processor) ProcessFile(ctx context.Context, path string) *FileReport {
	report := &FileReport{Path: path, RunID: uuid.NewString()}
	logger := p.log.With("file", path, "run_id", report.RunID)

	data, err := os.ReadFile(path)
	if err != nil {
		report.Fatal = fmt.Errorf("reading %s: %w", path, err)
		logger.Error("read failed", "error", err)
		return report
	}

	sniff, err := p.sniff(path, data)
	if err != nil {
		report.Fatal = err
		logger.Error("format detection failed", "error", err)
		return report
	}
	report.Sniff = sniff
	logger.Debug("format detected",
		"delimiter", string(sniff.Delimiter), "has_header", sniff.HasHeader)

	rows, err := readAllRows(path, data, sniff.Delimiter)
	if err != nil {
		report.Fatal = err
		logger.Error("csv read failed", "error", err)
		return report
	}
	if len(rows) == 0 {
		report.Fatal = &FormatError{File: path, Reason: "no rows"}
		return report
	}

	currencyOptional := p.opts.DefaultCurrency != ""

	var dataRows [][]string
	var firstLine int // 1-based CSV line of dataRows[0]
	var expectedCols int

	if sniff.HasHeader {
		report.Mapping, err = ResolveHeaderRow(path, rows[0], currencyOptional)
		dataRows, firstLine = rows[1:], 2
		expectedCols = len(rows[0])
	} else {
		report.Mapping, err = InferFromRow(path, rows[0], currencyOptional)
		dataRows, firstLine = rows, 1
		expectedCols = len(rows[0])
	}
	if err != nil {
		report.Fatal = err
		logger.Error("column mapping failed", "error", err)
		return report
	}
	logger.Debug("columns mapped", "mapping", report.Mapping)

	for i, row := range dataRows {
		line := firstLine + i

		if emptyRow(row) {
			continue
		}

		var verr *ValidationError
		if len(row) != expectedCols {
			verr = &ValidationError{
				File: path, Line: line,
				Reason: fmt.Sprintf("row has %d columns, expected %d", len(row), expectedCols),
			}
		} else {
			var rec Record
			rec, verr = NormalizeRow(path, line, row, report.Mapping, p.opts.DefaultCurrency)
			if verr == nil {
				report.Records = append(report.Records, rec)
				continue
			}
		}

		if p.opts.Strict {
			report.Fatal = verr
			logger.Error("row rejected", "line", line, "error", verr)
			return report
		}
		report.RowErrors = append(report.RowErrors, RowError{Line: line, Field: verr.Field, Err: verr, Raw: row})
		logger.Warn("row skipped", "line", line, "error", verr)
	}

	logger.Info("file normalized",
		"records", len(report.Records), "rejected_rows", len(report.RowErrors))
	return report
}

// sniff applies overrides before falling back to sample detection.
// Each stage is bypassed independently: a forced delimiter still
// leaves header detection to run against the sample, and vice versa.
func (p *Processor) sniff(path string, data []byte) (SniffResult, error) {
	delim := p.opts.DelimiterOverride
	header := p.opts.HeaderOverride

	if delim != 0 && header != nil {
		return SniffResult{Delimiter: delim, HasHeader: *header}, nil
	}

	sample := data
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	lines := sampleLines(bytesTrimBOM(sample))
	if len(lines) == 0 {
		return SniffResult{}, &FormatError{File: path, Reason: "file is empty"}
	}

	if delim == 0 {
		var err error
		delim, err = detectDelimiter(path, lines)
		if err != nil {
			return SniffResult{}, err
		}
	}

	hasHeader := false
	if header != nil {
		hasHeader = *header
	} else {
		hasHeader = looksLikeHeader(splitSniffLine(lines[0], delim))
	}

	return SniffResult{Delimiter: delim, HasHeader: hasHeader}, nil
}

// readAllRows reads every CSV row. Files here are small transactional
// exports; buffering them whole keeps line accounting trivial.
func readAllRows(path string, data []byte, delim rune) ([][]string, error) {
	r := newRowReader(data, delim)
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, row)
	}
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
