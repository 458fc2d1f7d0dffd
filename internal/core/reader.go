package core

import (
	"bytes"
	"encoding/csv"
)

// newRowReader builds a csv.Reader over file content with the settings
// real-world exports need: BOM stripped, LazyQuotes for unescaped
// quotes inside fields, and no fixed field count so short rows surface
// as row-level errors instead of killing the read.
func newRowReader(data []byte, delim rune) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r
}
