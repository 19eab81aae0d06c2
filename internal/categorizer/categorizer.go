// Package categorizer assigns each transaction a spending category by
// matching its description against ordered keyword rules.
package categorizer

import "strings"

// Rule pairs a category label with the keywords that select it.
type Rule struct {
	Category string
	Keywords []string
}

// Rules are evaluated top to bottom and the first keyword hit wins, so
// order encodes priority. Descriptions routinely match several sets
// ("amazon pay" carries both a shopping and a transfer hint); the
// earlier rule takes it.
var rules = []Rule{
	{"Food & Dining", []string{"swiggy", "zomato", "restaurant", "paytm.d", "paytm", "food", "cafe", "hotel", "dining", "dominos", "pizza", "kfc", "mcdonalds"}},
	{"Shopping", []string{"amazon", "flipkart", "meesho", "myntra", "mayuri a", "shopping", "mall", "store", "retail", "purchase", "buy"}},
	{"Transport", []string{"uber", "ola", "cab", "irctc", "taxi", "metro", "bus", "petrol", "fuel", "travel", "booking", "flight"}},
	{"Income", []string{"salary", "credit", "payme", "decentro", "refund", "interest", "dividend", "bonus", "cashback"}},
	{"Education", []string{"vit", "club", "school", "college", "university", "fees", "tuition", "course", "training"}},
	{"Cash Withdrawal", []string{"atm", "withdrawal", "cash", "pos"}},
	{"Utilities", []string{"electricity", "water", "gas", "mobile", "internet", "broadband", "recharge", "bill"}},
	{"Healthcare", []string{"hospital", "medical", "pharmacy", "doctor", "clinic", "medicine", "health"}},
	{"Entertainment", []string{"movie", "netflix", "spotify", "gaming", "theatre", "subscription", "entertainment"}},
	{"Investment", []string{"mutual fund", "sip", "fd", "insurance", "policy", "investment", "equity"}},
	{"Transfer", []string{"neft", "imps", "rtgs", "upi", "transfer", "payment"}},
}

// Fallback is returned when no keyword matches.
const Fallback = "Other"

// Categorize maps a transaction description to a category label. It is
// pure and total: every description gets a non-empty label.
func Categorize(description string) string {
	d := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(d, kw) {
				return rule.Category
			}
		}
	}
	return Fallback
}

// Categories returns the known category labels in priority order,
// without the fallback.
func Categories() []string {
	out := make([]string, len(rules))
	for i, rule := range rules {
		out[i] = rule.Category
	}
	return out
}
