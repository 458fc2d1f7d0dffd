package schema

import "strings"

// Statuses is the known transaction status token set. Matching is
// case-insensitive; the normalized form is lowercase.
var Statuses = map[string]bool{
	"completed": true,
	"pending":   true,
	"failed":    true,
	"cancelled": true,
}

// IsStatus reports whether s (case-insensitive, trimmed) is a known
// status token.
func IsStatus(s string) bool {
	return Statuses[strings.ToLower(strings.TrimSpace(s))]
}

// NormalizeStatus lowercases and trims a status cell. Returns false
// for unknown tokens.
func NormalizeStatus(s string) (string, bool) {
	tok := strings.ToLower(strings.TrimSpace(s))
	if !Statuses[tok] {
		return "", false
	}
	return tok, true
}
