// Package core implements the CSV normalization pipeline: format
// sniffing, header resolution, field normalization, and per-file
// processing. It has no CLI dependencies and can be driven by any
// frontend.
package core

import (
	"csvnorm/internal/schema"
)

// SniffResult is the detected file format: the field delimiter and
// whether the first row is a header. Derived once per file from a
// leading sample, immutable thereafter.
type SniffResult struct {
	Delimiter rune
	HasHeader bool
}

// ColumnMapping maps 0-based column indices to canonical fields.
// Built once per file (from the header row or by content inference)
// and reused for every row of that file. Columns that map to no
// canonical field are absent from the map and ignored.
type ColumnMapping map[int]schema.Field

// column returns the index mapped to f, or -1.
func (m ColumnMapping) column(f schema.Field) int {
	for i, field := range m {
		if field == f {
			return i
		}
	}
	return -1
}

// MissingFields returns the required canonical fields that have no
// column in the mapping, in canonical output order.
func (m ColumnMapping) MissingFields() []schema.Field {
	var missing []schema.Field
	for _, f := range schema.RequiredFields {
		if m.column(f) < 0 {
			missing = append(missing, f)
		}
	}
	return missing
}

// Record is one normalized transaction row. All values are in
// canonical form: ISO date, fixed two-decimal amount, uppercase
// currency, lowercase status, whitespace-collapsed description.
// Never mutated after creation.
type Record struct {
	TransactionDate string `json:"transaction_date"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
}

// RowError records a row-level validation failure in non-strict runs:
// the 1-based CSV line, the field that failed, why, and the raw cells
// so rejected rows can be written out for review.
type RowError struct {
	Line  int
	Field schema.Field
	Err   error
	Raw   []string
}

// FileReport is the outcome of processing one file: the records that
// normalized cleanly, the rows that did not, and the fatal error, if
// any, that aborted the file.
type FileReport struct {
	Path      string
	RunID     string
	Sniff     SniffResult
	Mapping   ColumnMapping
	Records   []Record
	RowErrors []RowError
	Fatal     error
}

// OK reports whether the file processed without any fatal or row-level
// error.
func (r *FileReport) OK() bool {
	return r.Fatal == nil && len(r.RowErrors) == 0
}
