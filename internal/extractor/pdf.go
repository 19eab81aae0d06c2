// Package extractor pulls plain text lines out of statement PDFs. The
// statements arrive password-protected, so extraction opens the
// document through an encrypted reader.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrBadPassword means the document could not be decrypted with the
// supplied password.
var ErrBadPassword = errors.New("PDF decryption failed: incorrect password")

// ExtractLines decodes a PDF document and returns its text lines in
// top-to-bottom, page-to-page order. An empty password works for
// unprotected documents.
func ExtractLines(data []byte, password string) (lines []string, err error) {
	// The pdf library panics on malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF parsing crashed: %v", r)
		}
	}()

	supplied := false
	r, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string {
		// Called again only when the previous answer was wrong;
		// returning "" stops the retry loop.
		if supplied {
			return ""
		}
		supplied = true
		return password
	})
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, ErrBadPassword
		}
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, errors.New("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pageLines(page)...)
	}

	if !isReadableText(lines) {
		return nil, errors.New("no readable text could be extracted: the PDF may be image-based or use undecodable font encodings")
	}

	return lines, nil
}

// pageLines reconstructs a page's visual rows. GetTextByRow preserves
// the tabular layout best; GetPlainText is the fallback for pages the
// row extractor cannot handle.
func pageLines(page pdf.Page) []string {
	var lines []string

	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		return lines
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return nil
	}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Words expected in any bank statement; extracted text containing none
// of them is treated as garbage rather than passed downstream.
var commonWords = []string{
	"bank", "account", "balance", "date", "statement", "transaction",
	"credit", "debit", "branch", "amount", "transfer", "upi", "neft",
}

// isReadableText guards against decodes of custom-font PDFs that
// produce byte soup: requires a minimum amount of text, a majority of
// plain ASCII characters, and at least one recognizable word.
func isReadableText(lines []string) bool {
	total, readable := 0, 0
	for _, line := range lines {
		for _, r := range line {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(".,-/:;()'\"@#%&*+=?!", r) {
				readable++
			}
		}
	}
	if total <= 50 || float64(readable)/float64(total) <= 0.6 {
		return false
	}

	combined := strings.ToLower(strings.Join(lines, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}
