package core

// errors.go defines the error taxonomy for normalization failures.
//
// Three kinds, by scope:
//   - FormatError: delimiter undetectable; file-level, aborts the file.
//   - SchemaError: required column missing or unmappable; file-level.
//   - ValidationError: one cell failed to parse; row-level, skipped or
//     fatal depending on strict mode.
//
// Every error names the file it came from, and ValidationError also
// names the CSV line and canonical field, so each failure is
// attributable without any surrounding context.

import (
	"fmt"
	"strings"

	"csvnorm/internal/schema"
)

// FormatError means no supported delimiter produced a consistent field
// count across the sampled lines.
type FormatError struct {
	File   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: format: %s", e.File, e.Reason)
}

// SchemaError means one or more required canonical fields could not be
// bound to any column, from the header or by content inference.
type SchemaError struct {
	File    string
	Missing []schema.Field
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: schema: missing required column(s): %s",
		e.File, strings.Join(names, ", "))
}

// ValidationError means a single cell failed to normalize against its
// field's expected type. Line is the 1-based CSV line number.
type ValidationError struct {
	File   string
	Line   int
	Field  schema.Field
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: line %d: field %s: invalid value %q: %s",
		e.File, e.Line, e.Field, e.Value, e.Reason)
}
