package core

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// Output formats accepted by WriteRecords.
const (
	FormatJSONL = "jsonl"
	FormatTable = "table"
)

// WriteRecords emits records in input order. "jsonl" prints one JSON
// object per line with the canonical key order; "table" renders an
// aligned text table for eyeballing.
func WriteRecords(w io.Writer, format string, records []Record) error {
	switch format {
	case FormatJSONL:
		enc := json.NewEncoder(w)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
		return nil

	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TRANSACTION_DATE\tDESCRIPTION\tAMOUNT\tCURRENCY\tSTATUS")
		for _, rec := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				rec.TransactionDate, rec.Description, rec.Amount, rec.Currency, rec.Status)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFailedRows writes every rejected row across the run to a CSV
// file for review: the source file, line, failing field, reason, and
// the original cells. No file is created when nothing was rejected.
func WriteFailedRows(path string, reports []*FileReport) error {
	total := 0
	for _, r := range reports {
		total += len(r.RowErrors)
	}
	if total == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating failed-rows file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"file", "line", "field", "reason", "row"}); err != nil {
		return fmt.Errorf("writing failed-rows header: %w", err)
	}
	for _, report := range reports {
		for _, re := range report.RowErrors {
			row := []string{
				report.Path,
				fmt.Sprintf("%d", re.Line),
				string(re.Field),
				re.Err.Error(),
			}
			row = append(row, re.Raw...)
			if err := w.Write(row); err != nil {
				return fmt.Errorf("writing failed row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing failed-rows file: %w", err)
	}
	return nil
}
