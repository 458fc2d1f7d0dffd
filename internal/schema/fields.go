// Package schema holds the declarative tables that drive CSV
// normalization: the canonical record fields, the header alias table,
// the ISO currency set, and the transaction status tokens.
//
// Keeping these as data rather than logic lets the resolver and the
// normalizer share one source of truth, and makes extending the alias
// or currency tables a one-line change.
package schema

// Field is a canonical output field name. Every normalized record
// carries exactly these five keys.
type Field string

const (
	FieldTransactionDate Field = "transaction_date"
	FieldDescription     Field = "description"
	FieldAmount          Field = "amount"
	FieldCurrency        Field = "currency"
	FieldStatus          Field = "status"
)

// RequiredFields lists every canonical field, in output order. All
// five are required; a file that cannot supply one is rejected before
// any row is processed.
var RequiredFields = []Field{
	FieldTransactionDate,
	FieldDescription,
	FieldAmount,
	FieldCurrency,
	FieldStatus,
}

// IsCanonical reports whether name is one of the five canonical fields.
func IsCanonical(name string) bool {
	switch Field(name) {
	case FieldTransactionDate, FieldDescription, FieldAmount, FieldCurrency, FieldStatus:
		return true
	}
	return false
}

// HeaderFragments are substrings that mark a cell as a likely column
// header. The sniffer uses them to tell a header row from a data row.
var HeaderFragments = []string{
	"date", "amount", "status", "desc", "currency", "curr", "ccy", "amt",
}
