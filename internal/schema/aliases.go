package schema

import (
	"regexp"
	"strings"
)

// HeaderAliases maps snake_cased header names to canonical fields.
// Lookup happens after SnakeCase normalization, so "Txn Date",
// "txn-date" and "TxnDate" all arrive here as "txn_date". Canonical
// names match themselves via ResolveHeader's fallback.
var HeaderAliases = map[string]Field{
	"date":        FieldTransactionDate,
	"txn_date":    FieldTransactionDate,
	"trans_date":  FieldTransactionDate,
	"posted_date": FieldTransactionDate,
	"value_date":  FieldTransactionDate,

	"desc":      FieldDescription,
	"details":   FieldDescription,
	"memo":      FieldDescription,
	"payee":     FieldDescription,
	"narrative": FieldDescription,

	"amt":   FieldAmount,
	"value": FieldAmount,
	"total": FieldAmount,

	"curr":          FieldCurrency,
	"ccy":           FieldCurrency,
	"currency_code": FieldCurrency,

	"stat":       FieldStatus,
	"state":      FieldStatus,
	"txn_status": FieldStatus,
}

var (
	camelBoundary = regexp.MustCompile(`[a-z][A-Z]`)
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]+`)
	multiUnder    = regexp.MustCompile(`_+`)
)

// SnakeCase converts a raw header cell to snake_case: CamelCase
// boundaries become underscores, every non-alphanumeric run becomes a
// single underscore, and leading/trailing underscores are dropped.
func SnakeCase(s string) string {
	s = strings.TrimSpace(s)

	// Split CamelCase boundaries before lowercasing.
	s = camelBoundary.ReplaceAllStringFunc(s, func(m string) string {
		return m[:1] + "_" + m[1:]
	})

	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "_")
	s = multiUnder.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// ResolveHeader maps a raw header cell to a canonical field. The cell
// is snake_cased, then looked up in the alias table, then matched
// against the canonical names themselves. The second return is false
// when the header matches nothing.
func ResolveHeader(raw string) (Field, bool) {
	name := SnakeCase(raw)
	if f, ok := HeaderAliases[name]; ok {
		return f, true
	}
	if IsCanonical(name) {
		return Field(name), true
	}
	return "", false
}
