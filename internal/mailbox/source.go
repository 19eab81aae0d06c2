// Package mailbox abstracts where statement PDFs come from. The
// production source is a mailbox holding bank emails with encrypted
// PDF attachments; this package defines that contract and ships a
// directory-backed source for local files.
package mailbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Attachment is one statement document fetched from a source.
type Attachment struct {
	Filename string
	Data     []byte
	Received time.Time
}

// Source yields statement attachments received within a date range,
// oldest first.
type Source interface {
	Fetch(ctx context.Context, from, to time.Time) ([]Attachment, error)
}

// DirSource reads statement PDFs from a local directory instead of a
// mailbox. Files are matched by the naming conventions the statement
// emails use.
type DirSource struct {
	Dir string
}

var statementGlobs = []string{"SBI_Statement*.pdf", "decrypted*.pdf"}

// Fetch implements Source. The date range bounds a mailbox search;
// local files have no meaningful received date, so a DirSource returns
// every matching file regardless of range.
func (s DirSource) Fetch(ctx context.Context, from, to time.Time) ([]Attachment, error) {
	var paths []string
	for _, pattern := range statementGlobs {
		matches, err := filepath.Glob(filepath.Join(s.Dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad statement glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var attachments []Attachment
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		attachments = append(attachments, Attachment{
			Filename: filepath.Base(path),
			Data:     data,
			Received: info.ModTime(),
		})
	}

	return attachments, nil
}
