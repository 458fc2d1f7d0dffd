package core

import (
	"errors"
	"strings"
	"testing"
)

func TestSniff_Delimiters(t *testing.T) {
	// The same content in each supported delimiter must sniff back to
	// exactly that delimiter.
	rows := [][]string{
		{"date", "description", "amount", "currency", "status"},
		{"2024-01-15", "Office Supplies", "1234.56", "USD", "completed"},
		{"2024-01-16", "Coffee", "3.50", "USD", "pending"},
	}

	for _, delim := range []rune{',', ';', '|', '\t'} {
		t.Run(string(delim), func(t *testing.T) {
			var lines []string
			for _, row := range rows {
				lines = append(lines, strings.Join(row, string(delim)))
			}
			content := strings.Join(lines, "\n") + "\n"

			got, err := Sniff("test.csv", []byte(content))
			if err != nil {
				t.Fatalf("Sniff() error = %v", err)
			}
			if got.Delimiter != delim {
				t.Errorf("Delimiter = %q, want %q", got.Delimiter, delim)
			}
			if !got.HasHeader {
				t.Error("HasHeader = false, want true")
			}
		})
	}
}

func TestSniff_NoHeader(t *testing.T) {
	content := "2024-01-15,Office Supplies,1234.56,USD,completed\n" +
		"2024-01-16,Coffee,3.50,USD,pending\n"

	got, err := Sniff("test.csv", []byte(content))
	if err != nil {
		t.Fatalf("Sniff() error = %v", err)
	}
	if got.Delimiter != ',' {
		t.Errorf("Delimiter = %q, want ','", got.Delimiter)
	}
	if got.HasHeader {
		t.Error("HasHeader = true, want false for data-only content")
	}
}

func TestSniff_AmbiguousDefaultsToNoHeader(t *testing.T) {
	// Alphabetic cells without any field-name fragment: not provably a
	// header, so policy says data.
	content := "alpha,beta,gamma\none,two,three\n"

	got, err := Sniff("test.csv", []byte(content))
	if err != nil {
		t.Fatalf("Sniff() error = %v", err)
	}
	if got.HasHeader {
		t.Error("HasHeader = true, want false for ambiguous content")
	}
}

func TestSniff_QuotedDelimiters(t *testing.T) {
	// Commas inside quoted fields must not skew the count.
	content := "date,description,amount,currency,status\n" +
		`2024-01-15,"Supplies, misc",1234.56,USD,completed` + "\n"

	got, err := Sniff("test.csv", []byte(content))
	if err != nil {
		t.Fatalf("Sniff() error = %v", err)
	}
	if got.Delimiter != ',' {
		t.Errorf("Delimiter = %q, want ','", got.Delimiter)
	}
}

func TestSniff_BOM(t *testing.T) {
	content := "\xef\xbb\xbfdate,amount,currency,status,description\n" +
		"2024-01-15,10.00,USD,pending,Coffee\n"

	got, err := Sniff("test.csv", []byte(content))
	if err != nil {
		t.Fatalf("Sniff() error = %v", err)
	}
	if got.Delimiter != ',' || !got.HasHeader {
		t.Errorf("Sniff() = %+v, want comma delimiter with header", got)
	}
}

func TestSniff_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "no delimiter", content: "justoneword\nanotherword\n"},
		{name: "inconsistent counts", content: "a,b,c\nd,e\nf,g,h,i\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sniff("bad.csv", []byte(tt.content))
			if err == nil {
				t.Fatal("Sniff() expected error")
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("error = %T, want *FormatError", err)
			}
			if !strings.Contains(ferr.Error(), "bad.csv") {
				t.Errorf("error %q should name the file", ferr.Error())
			}
		})
	}
}
