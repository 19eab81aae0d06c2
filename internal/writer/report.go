// Package writer serializes finished reports for the CLI.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
)

// JSONWriter writes the full report structure as indented JSON.
type JSONWriter struct{}

// WriteToFile writes the report to a JSON file at the given path.
func (w *JSONWriter) WriteToFile(path string, rep *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()
	return w.Write(f, rep)
}

// Write writes the report as JSON to the given writer.
func (w *JSONWriter) Write(out io.Writer, rep *models.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// CSVWriter writes the report's transaction rows in CSV form.
type CSVWriter struct {
	// IncludeSummary prepends summary rows before the column header.
	IncludeSummary bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, rep *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()
	return w.Write(f, rep)
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, rep *models.Report) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeSummary {
		cw.Write([]string{"# Transactions", strconv.Itoa(rep.Summary.TotalTransactions)})
		cw.Write([]string{"# Total Income", formatAmount(rep.Summary.TotalIncome)})
		cw.Write([]string{"# Total Expenses", formatAmount(rep.Summary.TotalExpenses)})
		cw.Write([]string{"# Net Savings", formatAmount(rep.Summary.NetSavings)})
		cw.Write([]string{"# Period", rep.Summary.DateRange.Start + " to " + rep.Summary.DateRange.End})
	}

	header := []string{"Transaction_ID", "Date", "Description", "Type", "Amount", "Balance", "Category", "Source"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range rep.Transactions {
		row := []string{
			txn.ID,
			txn.Date,
			txn.Description,
			txn.Type,
			formatAmount(txn.Amount),
			formatAmount(txn.Balance),
			txn.Category,
			txn.SourceFile,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return cw.Error()
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
