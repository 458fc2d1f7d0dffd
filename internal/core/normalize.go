package core

import (
	"csvnorm/internal/schema"
)

// NormalizeRow turns one raw row into a canonical Record using the
// file's column mapping. line is the 1-based CSV line number, used for
// error attribution. defaultCurrency, when non-empty, backfills a
// missing or empty currency column.
//
// The first failing field stops the row; no partial record escapes.
func NormalizeRow(file string, line int, row []string, mapping ColumnMapping, defaultCurrency string) (Record, *ValidationError) {
	var rec Record

	cell := func(f schema.Field) (string, bool) {
		i := mapping.column(f)
		if i < 0 || i >= len(row) {
			return "", false
		}
		return CleanCell(row[i]), true
	}

	fail := func(f schema.Field, value, reason string) *ValidationError {
		return &ValidationError{File: file, Line: line, Field: f, Value: value, Reason: reason}
	}

	raw, ok := cell(schema.FieldTransactionDate)
	if !ok {
		return rec, fail(schema.FieldTransactionDate, "", "column missing from row")
	}
	t, parsed := ParseDate(raw)
	if !parsed {
		return rec, fail(schema.FieldTransactionDate, raw, "unrecognized date format")
	}
	rec.TransactionDate = t.Format("2006-01-02")

	raw, ok = cell(schema.FieldAmount)
	if !ok {
		return rec, fail(schema.FieldAmount, "", "column missing from row")
	}
	amount, parsed := ParseAmount(raw)
	if !parsed {
		return rec, fail(schema.FieldAmount, raw, "unparseable amount")
	}
	rec.Amount = amount.StringFixed(2)

	raw, ok = cell(schema.FieldCurrency)
	switch {
	case (!ok || raw == "") && defaultCurrency != "":
		rec.Currency = defaultCurrency
	case !ok || raw == "":
		return rec, fail(schema.FieldCurrency, raw, "currency missing and no default configured")
	default:
		code, valid := schema.NormalizeCurrency(raw)
		if !valid {
			return rec, fail(schema.FieldCurrency, raw, "unknown currency code")
		}
		rec.Currency = code
	}

	raw, ok = cell(schema.FieldStatus)
	if !ok {
		return rec, fail(schema.FieldStatus, "", "column missing from row")
	}
	status, valid := schema.NormalizeStatus(raw)
	if !valid {
		return rec, fail(schema.FieldStatus, raw, "unknown status token")
	}
	rec.Status = status

	if raw, ok = cell(schema.FieldDescription); ok {
		rec.Description = CollapseWhitespace(raw)
	}

	return rec, nil
}
