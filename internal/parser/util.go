package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns for the fixed SBI statement layout.
var (
	// DD-MM-YY at the start of a line marks a new transaction row.
	datePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}`)
	// A transaction row always ends in a two-decimal balance amount.
	amountTailPattern = regexp.MustCompile(`\d+\.\d{2}\s*$`)
	// Captures the date token and the remainder of a date-start line.
	dateSplitPattern = regexp.MustCompile(`^(\d{2}-\d{2}-\d{2})(.*)$`)

	nonAmountChars = regexp.MustCompile(`[^\d.]`)
)

// startsWithDate checks if a line begins with a DD-MM-YY date token.
func startsWithDate(line string) bool {
	return datePattern.MatchString(strings.TrimSpace(line))
}

// endsWithAmount checks if a line ends in a two-decimal monetary amount.
func endsWithAmount(line string) bool {
	return amountTailPattern.MatchString(line)
}

// splitDateLine separates the leading date token from the rest of the line.
// The second return is the trailing text with surrounding space trimmed.
func splitDateLine(line string) (date, rest string, ok bool) {
	m := dateSplitPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// parseAmount converts a statement amount token like "1,234.56" to a
// float64. A literal "-" or empty string means the column is unused and
// parses to 0. If the token fails a direct parse after stripping
// thousands separators, all non-digit and non-dot characters are
// removed and the parse retried; a token that is still empty yields 0
// rather than an error, so a malformed amount never drops the record.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}

	cleaned := strings.ReplaceAll(s, ",", "")
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return v
	}

	cleaned = nonAmountChars.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
