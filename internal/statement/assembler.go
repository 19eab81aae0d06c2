// Package statement turns raw per-document text lines into one ordered
// transaction collection, running reconstruction, tokenization and
// categorization over each source document.
package statement

import (
	"errors"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/categorizer"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/parser"
)

// ErrEmptyBatch means no document in the batch yielded a single
// transaction. Individual unparseable documents are skipped; only
// whole-batch emptiness is fatal.
var ErrEmptyBatch = errors.New("no transactions parsed from any document: check the PDF password, the date range, and that the files are valid statements")

// Document is one source statement: artifact name plus its extracted
// text lines in top-to-bottom, page-to-page order.
type Document struct {
	Name  string
	Lines []string
}

// Assemble parses every document and merges the results into a single
// collection sorted by date ascending. The sort is stable, so ties
// keep document processing order and then in-document order. A
// document that parses to nothing is logged and skipped; the batch
// fails only when all of them do.
func Assemble(docs []Document, log zerolog.Logger) ([]models.Transaction, error) {
	var all []models.Transaction

	for _, doc := range docs {
		txns := parser.ParseDocument(doc.Lines)
		if len(txns) == 0 {
			log.Warn().Str("document", doc.Name).Msg("no transactions parsed, skipping document")
			continue
		}
		for i := range txns {
			annotate(&txns[i], doc.Name)
		}
		log.Info().Str("document", doc.Name).Int("transactions", len(txns)).Msg("parsed document")
		all = append(all, txns...)
	}

	if len(all) == 0 {
		return nil, ErrEmptyBatch
	}

	// ISO dates compare correctly as strings.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date < all[j].Date
	})

	return all, nil
}

func annotate(txn *models.Transaction, source string) {
	txn.Category = categorizer.Categorize(txn.Description)
	txn.SourceFile = source
	if len(txn.Date) >= 7 {
		txn.Month = txn.Date[:7]
	}
	if len(txn.Date) >= 4 {
		txn.Year, _ = strconv.Atoi(txn.Date[:4])
	}
}
