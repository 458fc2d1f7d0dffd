package core

import (
	"bytes"
	"strings"
	"unicode"

	"csvnorm/internal/schema"
)

// SampleSize is how many leading bytes of a file the sniffer inspects.
var SampleSize = 4096

// maxSampleLines caps how many lines of the sample are scored.
const maxSampleLines = 10

// delimiterCandidates is the fixed set of delimiters the sniffer will
// ever return, in tie-break order.
var delimiterCandidates = []rune{',', ';', '|', '\t'}

// utf8BOM gets stripped before any sampling; Excel exports routinely
// start with it.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// bytesTrimBOM strips a UTF-8 byte order mark.
func bytesTrimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}

// Sniff inspects a leading sample of file content and returns the
// detected delimiter and header presence. file is used only for error
// attribution.
func Sniff(file string, sample []byte) (SniffResult, error) {
	sample = bytes.TrimPrefix(sample, utf8BOM)
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	lines := sampleLines(sample)
	if len(lines) == 0 {
		return SniffResult{}, &FormatError{File: file, Reason: "file is empty"}
	}

	delim, err := detectDelimiter(file, lines)
	if err != nil {
		return SniffResult{}, err
	}

	return SniffResult{
		Delimiter: delim,
		HasHeader: looksLikeHeader(splitSniffLine(lines[0], delim)),
	}, nil
}

// sampleLines splits the sample into at most maxSampleLines non-empty
// lines. When the sample was truncated at SampleSize, the trailing
// partial line is dropped so a cut-off field cannot skew the counts.
func sampleLines(sample []byte) []string {
	text := strings.ReplaceAll(string(sample), "\r\n", "\n")
	complete := text
	if len(sample) == SampleSize {
		i := strings.LastIndexByte(text, '\n')
		if i < 0 {
			return nil
		}
		complete = text[:i]
	}

	var lines []string
	for _, line := range strings.Split(complete, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxSampleLines {
			break
		}
	}
	return lines
}

// detectDelimiter scores each candidate by its per-line occurrence
// count outside quoted regions. A candidate qualifies only when every
// sampled line has the same count and that count is at least one; the
// qualifying candidate with the highest count wins.
func detectDelimiter(file string, lines []string) (rune, error) {
	best := rune(0)
	bestCount := 0

	for _, cand := range delimiterCandidates {
		count := countUnquoted(lines[0], cand)
		if count < 1 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if countUnquoted(line, cand) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = cand
			bestCount = count
		}
	}

	if best == 0 {
		return 0, &FormatError{File: file, Reason: "no consistent delimiter found"}
	}
	return best, nil
}

// countUnquoted counts occurrences of delim outside double-quoted
// regions, so commas inside quoted descriptions do not inflate the
// comma score.
func countUnquoted(line string, delim rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			count++
		}
	}
	return count
}

// splitSniffLine is a cheap field split for header detection only; the
// real row reading goes through encoding/csv.
func splitSniffLine(line string, delim rune) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == delim })
	for i, f := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}
	return fields
}

// looksLikeHeader decides whether a row is a header: none of its cells
// may parse as a date, an amount, or a status token, and at least one
// cell must be alphabetic-only and contain a known field-name
// fragment. Anything ambiguous is treated as data.
func looksLikeHeader(cells []string) bool {
	fragmentHit := false
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if isDateLiteral(cell) || schema.IsStatus(cell) || isAmountLiteral(cell) {
			return false
		}
		if alphabeticOnly(cell) && containsFieldFragment(cell) {
			fragmentHit = true
		}
	}
	return fragmentHit
}

func alphabeticOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

func containsFieldFragment(s string) bool {
	lower := strings.ToLower(s)
	for _, frag := range schema.HeaderFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
