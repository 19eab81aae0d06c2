package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Transaction represents a single reconciled statement transaction.
// Credit and Debit come from the statement's separate amount columns;
// at most one of them is nonzero. Type and Amount are derived from
// whichever column carried the value.
type Transaction struct {
	Date        string  `json:"Date"` // ISO form, YYYY-MM-DD
	Description string  `json:"Description"`
	RefNo       string  `json:"-"` // reference token, "-" when absent
	Credit      float64 `json:"-"`
	Debit       float64 `json:"-"`
	Type        string  `json:"Type"` // Credit or Debit
	Amount      float64 `json:"Amount"`
	Balance     float64 `json:"Balance"`
	Category    string  `json:"Category"`
	ID          string  `json:"Transaction_ID"` // assigned in final sorted order

	SourceFile string `json:"-"` // originating statement document
	Month      string `json:"-"` // YYYY-MM, for monthly grouping
	Year       int    `json:"-"`
}

const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// CategoryStat aggregates debit spending for one category.
type CategoryStat struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// CategoryBreakdown maps category name to its aggregated stat. It
// serializes with categories ordered by amount descending, so the
// largest spending group always comes first; equal amounts order by
// category name.
type CategoryBreakdown map[string]CategoryStat

func (b CategoryBreakdown) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if b[names[i]].Amount != b[names[j]].Amount {
			return b[names[i]].Amount > b[names[j]].Amount
		}
		return names[i] < names[j]
	})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		stat, err := json.Marshal(b[name])
		if err != nil {
			return nil, err
		}
		buf.Write(stat)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DateRange is the span covered by a transaction collection.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary holds the aggregate statistics of one processing run.
type Summary struct {
	TotalTransactions  int               `json:"total_transactions"`
	TotalIncome        float64           `json:"total_income"`
	TotalExpenses      float64           `json:"total_expenses"`
	NetSavings         float64           `json:"net_savings"`
	SavingsRate        float64           `json:"savings_rate"`
	AvgMonthlyIncome   float64           `json:"avg_monthly_income"`
	AvgMonthlyExpenses float64           `json:"avg_monthly_expenses"`
	DateRange          DateRange         `json:"date_range"`
	CategoryBreakdown  CategoryBreakdown `json:"category_breakdown"`
}

// Insight is a qualitative finding derived from the summary.
type Insight struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // success, info, warning, error
	Value    string `json:"value"`
}

// Metadata describes how and when a report was generated.
type Metadata struct {
	GeneratedAt     string `json:"generated_at"`
	CategoriesFound int    `json:"categories_found"`
}

// Report is the final output of one processing run, handed to the
// presentation layer. Created once, never mutated.
type Report struct {
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
	Insights     []Insight     `json:"insights"`
	Metadata     Metadata      `json:"metadata"`
}
