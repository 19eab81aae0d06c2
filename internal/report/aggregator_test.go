package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
)

func txn(date, desc, typ string, amount float64, category string) models.Transaction {
	t := models.Transaction{
		Date:        date,
		Description: desc,
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Month:       date[:7],
	}
	if typ == models.TypeCredit {
		t.Credit = amount
	} else {
		t.Debit = amount
	}
	return t
}

func TestBuildSummary(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-15", "SWIGGY ORDER", models.TypeDebit, 1000, "Food & Dining"),
		txn("2024-06-16", "AMAZON ORDER", models.TypeDebit, 2000, "Shopping"),
		txn("2024-07-01", "SALARY", models.TypeCredit, 5000, "Income"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)

	s := rep.Summary
	assert.Equal(t, 3, s.TotalTransactions)
	assert.Equal(t, 5000.0, s.TotalIncome)
	assert.Equal(t, 3000.0, s.TotalExpenses)
	assert.Equal(t, 2000.0, s.NetSavings)
	assert.Equal(t, 40.0, s.SavingsRate)
	assert.Equal(t, models.DateRange{Start: "2024-06-15", End: "2024-07-01"}, s.DateRange)

	// Two distinct months.
	assert.Equal(t, 2500.0, s.AvgMonthlyIncome)
	assert.Equal(t, 1500.0, s.AvgMonthlyExpenses)

	assert.Equal(t, models.CategoryStat{Amount: 1000, Count: 1}, s.CategoryBreakdown["Food & Dining"])
	assert.Equal(t, models.CategoryStat{Amount: 2000, Count: 1}, s.CategoryBreakdown["Shopping"])

	assert.Equal(t, 2, rep.Metadata.CategoriesFound)
}

func TestBuildAssignsSequentialIDs(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-15", "A", models.TypeDebit, 10, "Other"),
		txn("2024-06-16", "B", models.TypeDebit, 20, "Other"),
		txn("2024-06-17", "C", models.TypeCredit, 30, "Income"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)

	assert.Equal(t, "REAL_0001", rep.Transactions[0].ID)
	assert.Equal(t, "REAL_0002", rep.Transactions[1].ID)
	assert.Equal(t, "REAL_0003", rep.Transactions[2].ID)

	// The input collection is not mutated.
	assert.Empty(t, txns[0].ID)
}

func TestBuildZeroIncomeSavingsRate(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-15", "SWIGGY ORDER", models.TypeDebit, 450, "Food & Dining"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.Summary.SavingsRate)
}

func TestBuildEmptyInput(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestBuildSumConservation(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-01", "A", models.TypeDebit, 123.45, "Food & Dining"),
		txn("2024-06-02", "B", models.TypeDebit, 67.89, "Shopping"),
		txn("2024-06-03", "C", models.TypeDebit, 10.10, "Shopping"),
		txn("2024-06-04", "D", models.TypeCredit, 999.99, "Income"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)

	var catSum float64
	for _, stat := range rep.Summary.CategoryBreakdown {
		catSum += stat.Amount
	}
	assert.InDelta(t, rep.Summary.TotalExpenses, catSum, 0.01)
}

func TestCategoryBreakdownSerializesAmountDescending(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-01", "ELECTRICITY BILL", models.TypeDebit, 100, "Utilities"),
		txn("2024-06-02", "UBER TRIP", models.TypeDebit, 900, "Transport"),
		txn("2024-06-03", "SWIGGY ORDER", models.TypeDebit, 500, "Food & Dining"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)

	data, err := json.Marshal(rep.Summary.CategoryBreakdown)
	require.NoError(t, err)

	// Largest spending group first, regardless of key or insertion order.
	body := string(data)
	transport := strings.Index(body, `"Transport"`)
	food := strings.Index(body, `"Food & Dining"`)
	utilities := strings.Index(body, `"Utilities"`)
	require.NotEqual(t, -1, transport)
	require.NotEqual(t, -1, food)
	require.NotEqual(t, -1, utilities)
	assert.Less(t, transport, food)
	assert.Less(t, food, utilities)

	// The ordered form still decodes to the same stats.
	var decoded map[string]models.CategoryStat
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, models.CategoryStat{Amount: 900, Count: 1}, decoded["Transport"])
}

func TestSavingsInsightTiers(t *testing.T) {
	tests := []struct {
		name         string
		income       float64
		expenses     float64
		wantSeverity string
		wantWord     string
	}{
		{"outstanding", 1000, 600, "success", "Outstanding"},
		{"excellent", 1000, 750, "success", "Excellent"},
		{"good", 1000, 850, "warning", "Good"},
		{"low", 1000, 950, "error", "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := []models.Transaction{
				txn("2024-06-01", "SALARY", models.TypeCredit, tt.income, "Income"),
				txn("2024-06-02", "SPEND", models.TypeDebit, tt.expenses, "Other"),
			}
			rep, err := Build(txns)
			require.NoError(t, err)
			require.NotEmpty(t, rep.Insights)

			in := rep.Insights[0]
			assert.Equal(t, "savings_analysis", in.Type)
			assert.Equal(t, tt.wantSeverity, in.Severity)
			assert.Contains(t, in.Message, tt.wantWord)

			rate := (tt.income - tt.expenses) / tt.income * 100
			assert.Contains(t, in.Message, formatRate(rate))
		})
	}
}

func TestTopCategoryInsight(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-01", "SWIGGY", models.TypeDebit, 700, "Food & Dining"),
		txn("2024-06-02", "AMAZON", models.TypeDebit, 300, "Shopping"),
		txn("2024-06-03", "SALARY", models.TypeCredit, 2000, "Income"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)
	require.Len(t, rep.Insights, 2)

	in := rep.Insights[1]
	assert.Equal(t, "category_analysis", in.Type)
	assert.Equal(t, "Top Spending: Food & Dining", in.Title)
	// 70% of expenses: over the 30% threshold.
	assert.Equal(t, "warning", in.Severity)
	assert.Contains(t, in.Message, "70.0%")
}

func TestTopCategoryInsightBalancedSpending(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-01", "A", models.TypeDebit, 25, "Food & Dining"),
		txn("2024-06-02", "B", models.TypeDebit, 25, "Shopping"),
		txn("2024-06-03", "C", models.TypeDebit, 25, "Transport"),
		txn("2024-06-04", "D", models.TypeDebit, 25, "Utilities"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)
	require.Len(t, rep.Insights, 2)

	// Every share is exactly 25%, under the 30% threshold; the tie
	// resolves to the first-seen category.
	in := rep.Insights[1]
	assert.Equal(t, "info", in.Severity)
	assert.Equal(t, "Top Spending: Food & Dining", in.Title)
}

func TestNoExpensesSkipsCategoryInsight(t *testing.T) {
	txns := []models.Transaction{
		txn("2024-06-01", "SALARY", models.TypeCredit, 5000, "Income"),
	}

	rep, err := Build(txns)
	require.NoError(t, err)
	require.Len(t, rep.Insights, 1)
	assert.Equal(t, "savings_analysis", rep.Insights[0].Type)
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹12,500", formatINR(12500.4))
	assert.Equal(t, "₹450", formatINR(450))
	assert.Equal(t, "₹1,234,568", formatINR(1234567.89))
	assert.Equal(t, "₹0", formatINR(0))
}

// formatRate renders a rate the way the insight message does.
func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
