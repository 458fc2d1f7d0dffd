package core

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // StringFixed(2) representation
		wantOK  bool
	}{
		// U.S. format
		{name: "us thousands", input: "1,234.56", want: "1234.56", wantOK: true},
		{name: "us multiple groups", input: "12,345,678.90", want: "12345678.90", wantOK: true},
		{name: "plain decimal", input: "1234.56", want: "1234.56", wantOK: true},
		{name: "integer", input: "1234", want: "1234.00", wantOK: true},

		// European format
		{name: "eu thousands", input: "1.234,56", want: "1234.56", wantOK: true},
		{name: "eu multiple groups", input: "12.345.678,90", want: "12345678.90", wantOK: true},
		{name: "eu decimal comma only", input: "12,34", want: "12.34", wantOK: true},

		// Comma as thousands when not a trailing 2-digit separator
		{name: "comma thousands only", input: "1,234", want: "1234.00", wantOK: true},

		// Signs and symbols
		{name: "negative", input: "-1,234.56", want: "-1234.56", wantOK: true},
		{name: "explicit positive", input: "+99.50", want: "99.50", wantOK: true},
		{name: "dollar symbol", input: "$1,234.56", want: "1234.56", wantOK: true},
		{name: "euro symbol", input: "€1.234,56", want: "1234.56", wantOK: true},
		{name: "accounting negative", input: "(1,234.56)", want: "-1234.56", wantOK: true},

		// Invalid
		{name: "empty", input: "", wantOK: false},
		{name: "text", input: "abc", wantOK: false},
		{name: "date-like", input: "2024-01-15", wantOK: false},
		{name: "two decimal points", input: "1.2.3", wantOK: false},
		{name: "stray sign", input: "--5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.StringFixed(2) != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got.StringFixed(2), tt.want)
			}
		})
	}
}

// Both locale spellings of the same value must normalize identically.
func TestParseAmount_LocaleEquivalence(t *testing.T) {
	us, okUS := ParseAmount("1,234.56")
	eu, okEU := ParseAmount("1.234,56")
	if !okUS || !okEU {
		t.Fatal("both formats should parse")
	}
	if !us.Equal(eu) {
		t.Errorf("US %s != EU %s", us, eu)
	}
	if us.StringFixed(2) != "1234.56" {
		t.Errorf("canonical value = %s, want 1234.56", us.StringFixed(2))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string // canonical YYYY-MM-DD
		wantOK bool
	}{
		{name: "iso", input: "2024-01-15", want: "2024-01-15", wantOK: true},
		{name: "us slash", input: "01/15/2024", want: "2024-01-15", wantOK: true},
		{name: "eu dash", input: "15-01-2024", want: "2024-01-15", wantOK: true},
		{name: "surrounding whitespace", input: " 2024-01-15 ", want: "2024-01-15", wantOK: true},
		{name: "month out of range", input: "2024-13-01", wantOK: false},
		{name: "us month out of range", input: "13/40/2024", wantOK: false},
		{name: "not a date", input: "yesterday", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "whitespace", input: "  hello  ", want: "hello"},
		{name: "excel formula", input: `="12345"`, want: "12345"},
		{name: "leading equals", input: "=value", want: "value"},
		{name: "surrounding quotes", input: `"quoted"`, want: "quoted"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Office Supplies", "Office Supplies"},
		{"  Office   Supplies  ", "Office Supplies"},
		{"a\t\tb", "a b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.input); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
