package parser

import "strings"

// Reconstruct repairs transaction rows that the PDF text extractor has
// split across multiple physical lines, returning one candidate line
// per potential transaction.
//
// A line starting with a DD-MM-YY date token opens a transaction row.
// If it already ends in a two-decimal amount it is kept as-is;
// otherwise following lines are appended until an amount terminator
// appears. Lines with no leading date are orphaned description
// fragments: they are collected and spliced into the next date-start
// line, between its date token and its trailing columns. Blank lines
// are never content.
//
// The heuristic is best-effort pattern matching, not a grammar. A
// merge that reaches end-of-input without a terminator is still
// emitted; the tokenizer rejects it downstream.
func Reconstruct(lines []string) []string {
	var out []string
	n := len(lines)
	i := 0

	for i < n {
		ln := strings.TrimSpace(lines[i])
		if ln == "" {
			i++
			continue
		}

		if startsWithDate(ln) {
			if endsWithAmount(ln) {
				out = append(out, ln)
				i++
				continue
			}
			// Trailing numeric columns were pushed onto later lines.
			merged := ln
			j := i + 1
			for j < n && !endsWithAmount(merged) {
				if next := strings.TrimSpace(lines[j]); next != "" {
					merged += " " + next
				}
				j++
			}
			out = append(out, merged)
			i = j
			continue
		}

		// Orphaned description fragment(s): the description wrapped
		// onto lines preceding its date/amount row.
		parts := []string{ln}
		j := i + 1
		for j < n && !startsWithDate(strings.TrimSpace(lines[j])) {
			if next := strings.TrimSpace(lines[j]); next != "" {
				parts = append(parts, next)
			}
			j++
		}
		if j < n {
			if date, rest, ok := splitDateLine(lines[j]); ok {
				combined := strings.TrimSpace(date + " " + strings.Join(parts, " ") + " " + rest)
				out = append(out, combined)
			}
			i = j + 1
			continue
		}
		i = j
	}

	return out
}
