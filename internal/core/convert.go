package core

// convert.go provides cell-level coercion from raw CSV text to
// canonical values. These functions handle the messy reality of
// exported transaction data:
//   - three date formats (ISO, US slash, EU dash)
//   - U.S. ("1,234.56") and European ("1.234,56") number formats
//   - currency symbols and accounting negatives "(123.45)"
//   - Excel formula prefixes (="value") and stray quotes
//
// Amounts are exact base-10 decimals, never floats.

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// amountRegex validates the cleaned amount string after grouping
// separators are stripped and the decimal separator is canonicalized
// to a period.
var amountRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// whitespaceRun collapses internal whitespace in free-text fields.
var whitespaceRun = regexp.MustCompile(`\s+`)

// dateLayouts is the recognized date pattern set, tried in order. The
// same set drives content inference, header detection, and date
// normalization, so a cell classified as a date always normalizes.
var dateLayouts = []string{
	"2006-01-02", // ISO
	"01/02/2006", // US
	"02-01-2006", // EU
}

// CleanCell removes common CSV artifacts from a cell value: leading
// and trailing whitespace, Excel formula prefixes (="..."), and
// surrounding quote characters.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) > 3 {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// ParseDate parses a date cell against the recognized layout set and
// returns it with the canonical YYYY-MM-DD representation.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isDateLiteral reports whether a cell parses under any recognized
// date layout.
func isDateLiteral(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// ParseAmount parses a monetary cell into an exact decimal.
//
// Locale detection by separator pattern: when a comma appears after
// the last period, or the cell has exactly one comma followed by
// exactly two digits, the comma is the decimal separator and periods
// are grouping (European); otherwise the period is the decimal
// separator and commas are grouping (U.S.).
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)

	// Accounting format "(123.45)" means negative.
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	for _, sym := range []string{"$", "€", "£"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.TrimSpace(s)

	s = canonicalizeSeparators(s)

	if !amountRegex.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// canonicalizeSeparators rewrites an amount so that the period is the
// decimal separator and no grouping separators remain.
func canonicalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastPeriod := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastPeriod >= 0:
		if lastComma > lastPeriod {
			// European: periods group, comma is decimal.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// U.S.: commas group.
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && lastComma == len(s)-3 {
			// Single trailing comma with two decimals: European.
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// isAmountLiteral reports whether a cell parses as a monetary amount.
func isAmountLiteral(s string) bool {
	_, ok := ParseAmount(s)
	return ok
}

// CollapseWhitespace trims a free-text cell and collapses internal
// whitespace runs to a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
