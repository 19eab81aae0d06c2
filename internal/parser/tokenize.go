package parser

import (
	"strings"
	"time"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
)

// Statement boilerplate that survives reconstruction but is not a
// transaction: page headers/footers, balance labels, period banners.
var skipPhrases = []string{
	"visit", "customer care", "welcome", "transaction details",
	"your opening balance", "closing balance", "transaction overview",
	"branch", "statement period", "account number", "page no",
}

// Date layouts accepted for the leading token, day-first.
var dateLayouts = []string{"02-01-06", "02-01-2006"}

// Tokenize splits a reconstructed candidate line into its positional
// fields and returns the resulting transaction. The statement layout
// is fixed, so fields are taken from the end of the token list:
// balance is last, then debit, credit and reference; the date is the
// first token and the description is everything in between.
//
// The second return is false for noise lines: missing amount tail, too
// few columns, boilerplate descriptions, or an unparseable date.
// Category, source and month/year annotations are left for later
// stages.
func Tokenize(line string) (models.Transaction, bool) {
	if !endsWithAmount(line) {
		return models.Transaction{}, false
	}

	toks := strings.Fields(line)
	if len(toks) < 5 {
		return models.Transaction{}, false
	}

	dateTok := toks[0]
	refTok := toks[len(toks)-4]
	creditTok := toks[len(toks)-3]
	debitTok := toks[len(toks)-2]
	balanceTok := toks[len(toks)-1]
	description := strings.Join(toks[1:len(toks)-4], " ")

	low := strings.ToLower(description)
	for _, phrase := range skipPhrases {
		if strings.Contains(low, phrase) {
			return models.Transaction{}, false
		}
	}

	date, ok := parseDate(dateTok)
	if !ok {
		return models.Transaction{}, false
	}

	credit := parseAmount(creditTok)
	debit := parseAmount(debitTok)
	balance := parseAmount(balanceTok)

	// When both columns parse nonzero the input is malformed; Credit
	// wins. Known ambiguity, kept as-is.
	txnType := models.TypeDebit
	amount := debit
	if credit > 0 {
		txnType = models.TypeCredit
		amount = credit
	}

	return models.Transaction{
		Date:        date.Format("2006-01-02"),
		Description: description,
		RefNo:       refTok,
		Credit:      credit,
		Debit:       debit,
		Balance:     balance,
		Type:        txnType,
		Amount:      amount,
	}, true
}

// ParseDocument runs reconstruction and tokenization over one
// document's raw extracted lines, dropping noise lines.
func ParseDocument(lines []string) []models.Transaction {
	var txns []models.Transaction
	for _, candidate := range Reconstruct(lines) {
		if txn, ok := Tokenize(candidate); ok {
			txns = append(txns, txn)
		}
	}
	return txns
}

func parseDate(tok string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
