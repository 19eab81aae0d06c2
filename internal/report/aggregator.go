// Package report computes summary statistics, category breakdowns and
// narrative insights from an assembled transaction collection.
package report

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
)

// ErrEmptyReport means the aggregator was invoked on zero records.
var ErrEmptyReport = errors.New("no transactions to analyze: check the PDF password, the date range, and that the files are valid statements")

// Build aggregates a sorted transaction collection into the final
// report. Transaction IDs are assigned here, sequentially in the
// collection's order. The input is treated as immutable; the report
// carries its own copy.
func Build(txns []models.Transaction) (*models.Report, error) {
	if len(txns) == 0 {
		return nil, ErrEmptyReport
	}

	out := make([]models.Transaction, len(txns))
	copy(out, txns)
	for i := range out {
		out[i].ID = fmt.Sprintf("REAL_%04d", i+1)
	}

	var totalIncome, totalExpenses float64
	months := map[string]struct{}{}
	minDate, maxDate := out[0].Date, out[0].Date

	// Insertion-ordered breakdown so amount ties resolve
	// deterministically by first appearance.
	breakdown := map[string]*models.CategoryStat{}
	var order []string

	for _, t := range out {
		switch t.Type {
		case models.TypeCredit:
			totalIncome += t.Amount
		case models.TypeDebit:
			totalExpenses += t.Amount
			stat, ok := breakdown[t.Category]
			if !ok {
				stat = &models.CategoryStat{}
				breakdown[t.Category] = stat
				order = append(order, t.Category)
			}
			stat.Amount += t.Amount
			stat.Count++
		}
		months[monthOf(t)] = struct{}{}
		if t.Date < minDate {
			minDate = t.Date
		}
		if t.Date > maxDate {
			maxDate = t.Date
		}
	}

	netSavings := totalIncome - totalExpenses
	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = netSavings / totalIncome * 100
	}

	monthCount := len(months)
	if monthCount < 1 {
		monthCount = 1
	}

	breakdownOut := make(models.CategoryBreakdown, len(breakdown))
	for cat, stat := range breakdown {
		breakdownOut[cat] = models.CategoryStat{Amount: round2(stat.Amount), Count: stat.Count}
	}

	summary := models.Summary{
		TotalTransactions:  len(out),
		TotalIncome:        round2(totalIncome),
		TotalExpenses:      round2(totalExpenses),
		NetSavings:         round2(netSavings),
		SavingsRate:        round2(savingsRate),
		AvgMonthlyIncome:   round2(totalIncome / float64(monthCount)),
		AvgMonthlyExpenses: round2(totalExpenses / float64(monthCount)),
		DateRange:          models.DateRange{Start: minDate, End: maxDate},
		CategoryBreakdown:  breakdownOut,
	}

	insights := []models.Insight{savingsInsight(savingsRate)}
	if top, ok := topCategory(breakdown, order); ok {
		insights = append(insights, categoryInsight(top, breakdown[top], totalExpenses))
	}

	return &models.Report{
		Transactions: out,
		Summary:      summary,
		Insights:     insights,
		Metadata: models.Metadata{
			GeneratedAt:     time.Now().Format(time.RFC3339),
			CategoriesFound: len(breakdown),
		},
	}, nil
}

func savingsInsight(rate float64) models.Insight {
	var message, severity string
	switch {
	case rate > 30:
		message = fmt.Sprintf("Outstanding savings rate of %.1f%%! You're in the top tier of savers.", rate)
		severity = "success"
	case rate > 20:
		message = fmt.Sprintf("Excellent %.1f%% savings rate! You're building wealth effectively.", rate)
		severity = "success"
	case rate > 10:
		message = fmt.Sprintf("Good %.1f%% savings rate. Aim for 20%%+ for optimal growth.", rate)
		severity = "warning"
	default:
		message = fmt.Sprintf("Low %.1f%% savings rate. Focus on expense optimization.", rate)
		severity = "error"
	}
	return models.Insight{
		Type:     "savings_analysis",
		Title:    fmt.Sprintf("Savings Rate: %.1f%%", rate),
		Message:  message,
		Severity: severity,
		Value:    fmt.Sprintf("%.1f%%", rate),
	}
}

func categoryInsight(category string, stat *models.CategoryStat, totalExpenses float64) models.Insight {
	pct := 0.0
	if totalExpenses > 0 {
		pct = stat.Amount / totalExpenses * 100
	}

	advice := "Well-distributed spending pattern."
	severity := "info"
	if pct > 30 {
		advice = "Consider budgeting for this category."
		severity = "warning"
	}

	amount := formatINR(stat.Amount)
	return models.Insight{
		Type:     "category_analysis",
		Title:    "Top Spending: " + category,
		Message:  fmt.Sprintf("%s accounts for %.1f%% of your expenses (%s). %s", category, pct, amount, advice),
		Severity: severity,
		Value:    amount,
	}
}

// topCategory returns the highest-amount expense category, ties going
// to the earliest-seen one.
func topCategory(breakdown map[string]*models.CategoryStat, order []string) (string, bool) {
	if len(order) == 0 {
		return "", false
	}
	top := order[0]
	for _, cat := range order[1:] {
		if breakdown[cat].Amount > breakdown[top].Amount {
			top = cat
		}
	}
	return top, true
}

// monthOf prefers the assembler's month annotation, falling back to
// the date's YYYY-MM prefix.
func monthOf(t models.Transaction) string {
	if t.Month != "" {
		return t.Month
	}
	if len(t.Date) >= 7 {
		return t.Date[:7]
	}
	return t.Date
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatINR renders an amount as a whole-rupee figure with thousands
// separators, e.g. 12500.4 renders as "₹12,500".
func formatINR(amount float64) string {
	s := fmt.Sprintf("%.0f", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-₹" + b.String()
	}
	return "₹" + b.String()
}
