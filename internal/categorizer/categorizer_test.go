package categorizer

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"SWIGGY ORDER 12345", "Food & Dining"},
		{"ZOMATO ONLINE", "Food & Dining"},
		{"AMAZON RETAIL", "Shopping"},
		{"UBER TRIP BLR", "Transport"},
		{"SALARY JUNE", "Income"},
		{"VIT FEES SEM 5", "Education"},
		{"ATM WDL MG ROAD", "Cash Withdrawal"},
		{"AIRTEL RECHARGE", "Utilities"},
		{"APOLLO PHARMACY", "Healthcare"},
		{"NETFLIX.COM", "Entertainment"},
		{"MUTUAL FUND SIP", "Investment"},
		{"NEFT TO LANDLORD", "Transfer"},
		{"QQXXZZ UNMATCHED", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := Categorize(tt.description)
			if got != tt.expected {
				t.Errorf("Categorize(%q): got %q, want %q", tt.description, got, tt.expected)
			}
		})
	}
}

// Rule order is priority: a description matching several keyword sets
// takes the earliest rule. "amazon pay" carries both a shopping and a
// transfer hint and must stay Shopping.
func TestCategorizeFirstMatchWins(t *testing.T) {
	if got := Categorize("AMAZON PAY PAYMENT"); got != "Shopping" {
		t.Errorf("got %q, want Shopping", got)
	}
	// "upi" (Transfer) appears alongside "swiggy" (Food & Dining).
	if got := Categorize("UPI SWIGGY BANGALORE"); got != "Food & Dining" {
		t.Errorf("got %q, want Food & Dining", got)
	}
}

func TestCategorizeIsTotal(t *testing.T) {
	inputs := []string{"", " ", "123456", "ALL CAPS NOISE", "unicode ₹ text"}
	for _, in := range inputs {
		if got := Categorize(in); got == "" {
			t.Errorf("Categorize(%q) returned an empty label", in)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	if len(cats) != 11 {
		t.Fatalf("got %d categories, want 11", len(cats))
	}
	if cats[0] != "Food & Dining" || cats[len(cats)-1] != "Transfer" {
		t.Errorf("unexpected priority order: %v", cats)
	}
}
