package schema

import "strings"

// Currencies is the known ISO 4217 code set accepted in the currency
// column. Not exhaustive; covers the currencies that show up in the
// transaction exports this tool is pointed at.
var Currencies = map[string]bool{
	"AED": true, "AUD": true, "BRL": true, "CAD": true, "CHF": true,
	"CNY": true, "CZK": true, "DKK": true, "EUR": true, "GBP": true,
	"HKD": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"JPY": true, "KRW": true, "KZT": true, "MXN": true, "MYR": true,
	"NOK": true, "NZD": true, "PHP": true, "PLN": true, "RON": true,
	"RUB": true, "SEK": true, "SGD": true, "THB": true, "TRY": true,
	"TWD": true, "UAH": true, "USD": true, "VND": true, "ZAR": true,
}

// IsCurrency reports whether s is exactly three uppercase letters from
// the known currency set. Lowercase or mixed-case codes do not match;
// content inference treats those as free text.
func IsCurrency(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return Currencies[s]
}

// NormalizeCurrency uppercases and validates a currency cell. Returns
// false when the code is not in the known set.
func NormalizeCurrency(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 3 || !Currencies[code] {
		return "", false
	}
	return code, true
}
