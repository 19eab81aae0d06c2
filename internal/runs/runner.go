package runs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/extractor"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/mailbox"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/report"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/statement"
)

// Request carries the parameters of one processing run.
type Request struct {
	From        time.Time
	To          time.Time
	PDFPassword string
}

// Runner executes processing runs against a statement source. Each run
// is one atomic pipeline invocation on its own goroutine; independent
// runs share nothing but the store, where each writes only its own key.
type Runner struct {
	Source mailbox.Source
	Store  *Store
	Log    zerolog.Logger
}

// Start registers a new run and launches it in the background,
// returning the run ID for status polling.
func (r *Runner) Start(req Request) string {
	id := uuid.New().String()
	r.Store.Create(id, "Starting statement processing...")
	go r.run(id, req)
	return id
}

// Execute runs the pipeline synchronously and returns the report. The
// CLI path uses this directly; Start wraps it for background serving.
func (r *Runner) Execute(ctx context.Context, req Request, progress func(int, string)) (*models.Report, error) {
	progress(15, "Fetching statement documents...")
	attachments, err := r.Source.Fetch(ctx, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("statement fetch failed: %w", err)
	}
	if len(attachments) == 0 {
		return nil, errors.New("no statement documents found for the specified date range: check the date range and that statements exist in the source")
	}

	progress(35, fmt.Sprintf("Decrypting and extracting %d document(s)...", len(attachments)))
	var docs []statement.Document
	badPassword := false
	for _, att := range attachments {
		lines, err := extractor.ExtractLines(att.Data, req.PDFPassword)
		if err != nil {
			if errors.Is(err, extractor.ErrBadPassword) {
				badPassword = true
			}
			r.Log.Warn().Str("document", att.Filename).Err(err).Msg("extraction failed, skipping document")
			continue
		}
		docs = append(docs, statement.Document{Name: att.Filename, Lines: lines})
	}
	if len(docs) == 0 {
		if badPassword {
			return nil, extractor.ErrBadPassword
		}
		return nil, errors.New("no text could be extracted from any statement document")
	}

	progress(55, "Parsing and categorizing transactions...")
	txns, err := statement.Assemble(docs, r.Log)
	if err != nil {
		return nil, err
	}

	progress(80, "Computing summary and insights...")
	return report.Build(txns)
}

func (r *Runner) run(id string, req Request) {
	log := r.Log.With().Str("run_id", id).Logger()
	log.Info().Msg("run started")

	rep, err := r.Execute(context.Background(), req, func(pct int, msg string) {
		r.Store.Progress(id, pct, msg)
	})
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		r.Store.Fail(id, err.Error())
		return
	}

	msg := fmt.Sprintf("Processed %d transactions across %d categories",
		rep.Summary.TotalTransactions, rep.Metadata.CategoriesFound)
	r.Store.Complete(id, rep, msg)
	log.Info().Int("transactions", rep.Summary.TotalTransactions).Msg("run completed")
}
