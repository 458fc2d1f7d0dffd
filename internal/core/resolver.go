package core

import (
	"csvnorm/internal/schema"
)

// resolver.go builds the per-file ColumnMapping, either from a header
// row or, for headerless files, by classifying the first data row's
// cell content.

// classifier is one (predicate, field) pair of the content-inference
// chain. Pairs are evaluated in order per cell; the first predicate
// that matches claims the cell for its field.
type classifier struct {
	match func(string) bool
	field schema.Field
}

// cellClassifiers is the fixed-priority inference chain. Order
// matters: a date is never mistaken for an amount, a currency code
// never for a description. Description is the fallback for anything
// unmatched.
var cellClassifiers = []classifier{
	{isDateLiteral, schema.FieldTransactionDate},
	{schema.IsCurrency, schema.FieldCurrency},
	{schema.IsStatus, schema.FieldStatus},
	{isAmountLiteral, schema.FieldAmount},
}

// ResolveHeaderRow maps each header cell to a canonical field via the
// alias table. Cells that match nothing are left unmapped and their
// columns ignored. Returns a SchemaError naming every required field
// that no column supplies. currencyOptional relaxes the currency
// column when a default currency will backfill it.
func ResolveHeaderRow(file string, header []string, currencyOptional bool) (ColumnMapping, error) {
	mapping := make(ColumnMapping, len(header))
	claimed := make(map[schema.Field]bool, len(schema.RequiredFields))

	for i, cell := range header {
		field, ok := schema.ResolveHeader(CleanCell(cell))
		if !ok || claimed[field] {
			continue
		}
		mapping[i] = field
		claimed[field] = true
	}

	if missing := requiredMissing(mapping, currencyOptional); len(missing) > 0 {
		return nil, &SchemaError{File: file, Missing: missing}
	}
	return mapping, nil
}

// InferFromRow classifies each cell of the first data row through the
// fixed-priority chain. Each canonical field is assigned to at most
// one column; the first matching cell wins. Unmatched cells become the
// description, and any further unmatched columns are ignored. Returns
// a SchemaError when a single pass leaves a required field unassigned.
func InferFromRow(file string, row []string, currencyOptional bool) (ColumnMapping, error) {
	mapping := make(ColumnMapping, len(row))
	claimed := make(map[schema.Field]bool, len(schema.RequiredFields))

cells:
	for i, cell := range row {
		cell = CleanCell(cell)
		for _, c := range cellClassifiers {
			if claimed[c.field] || !c.match(cell) {
				continue
			}
			mapping[i] = c.field
			claimed[c.field] = true
			continue cells
		}
		if !claimed[schema.FieldDescription] {
			mapping[i] = schema.FieldDescription
			claimed[schema.FieldDescription] = true
		}
	}

	if missing := requiredMissing(mapping, currencyOptional); len(missing) > 0 {
		return nil, &SchemaError{File: file, Missing: missing}
	}
	return mapping, nil
}

// requiredMissing filters the mapping's missing fields down to the
// ones that actually block processing.
func requiredMissing(m ColumnMapping, currencyOptional bool) []schema.Field {
	var missing []schema.Field
	for _, f := range m.MissingFields() {
		if f == schema.FieldCurrency && currencyOptional {
			continue
		}
		missing = append(missing, f)
	}
	return missing
}
