package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/api"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/logger"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/mailbox"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/runs"
	"github.com/AkshayAwasthi30/Finance-Flow/internal/writer"
)

const version = "1.0.0"

func defaultAddr() string {
	if addr := os.Getenv("FINANCE_FLOW_ADDR"); addr != "" {
		return addr
	}
	return ":5000"
}

func main() {
	dirFlag := flag.String("dir", ".", "Directory containing statement PDFs")
	passwordFlag := flag.String("password", "", "PDF decryption password")
	outputFlag := flag.String("output", "finance_report.json", "Output report file path")
	formatFlag := flag.String("format", "json", "Output format: json or csv")
	serveFlag := flag.Bool("serve", false, "Start the web API instead of one-shot processing")
	addrFlag := flag.String("addr", defaultAddr(), "Listen address for -serve")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Finance Flow - Bank Statement Analyzer

Reconstructs transactions from statement PDFs, categorizes spending,
and produces summary analytics with narrative insights.

Usage:
  finance-flow [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Analyze all statement PDFs in the current directory
  finance-flow -password=67890150390

  # Write the transaction table as CSV
  finance-flow -dir=~/statements -password=... -format=csv -output=transactions.csv

  # Run the web API
  finance-flow -serve -addr=:5000
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("finance-flow v%s\n", version)
		os.Exit(0)
	}

	log := logger.New()
	store := runs.NewStore()
	runner := &runs.Runner{
		Source: mailbox.DirSource{Dir: *dirFlag},
		Store:  store,
		Log:    log,
	}

	if *serveFlag {
		h := &api.Handler{
			Runner:   runner,
			Store:    store,
			Sessions: api.NewSessions(),
			Log:      log,
		}
		app := api.NewApp(h)
		log.Info().Str("addr", *addrFlag).Msg("starting web API")
		if err := app.Listen(*addrFlag); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	rep, err := runner.Execute(context.Background(), runs.Request{PDFPassword: *passwordFlag},
		func(pct int, msg string) {
			log.Info().Int("progress", pct).Msg(msg)
		})
	if err != nil {
		log.Fatal().Err(err).Msg("processing failed")
	}

	switch strings.ToLower(*formatFlag) {
	case "json":
		w := &writer.JSONWriter{}
		err = w.WriteToFile(*outputFlag, rep)
	case "csv":
		w := &writer.CSVWriter{IncludeSummary: true}
		err = w.WriteToFile(*outputFlag, rep)
	default:
		log.Fatal().Str("format", *formatFlag).Msg("unknown output format, use json or csv")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}

	log.Info().
		Int("transactions", rep.Summary.TotalTransactions).
		Str("period", rep.Summary.DateRange.Start+" to "+rep.Summary.DateRange.End).
		Float64("total_income", rep.Summary.TotalIncome).
		Float64("total_expenses", rep.Summary.TotalExpenses).
		Float64("savings_rate", rep.Summary.SavingsRate).
		Str("output", *outputFlag).
		Msg("analysis complete")
}
