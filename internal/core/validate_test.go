package core

import "testing"

func validCard() CreditCard {
	return CreditCard{
		Name:           "Bonus",
		Bank:           "Garanti BBVA",
		Limit:          Money{Cents: 10000_00},
		CurrentDebt:    Money{Cents: 3000_00},
		MinimumPayment: Money{Cents: 500_00},
		StatementDay:   25,
		DueDay:         5,
		Type:           CardVisa,
		Color:          ColorBlue,
	}
}

func TestValidateExpense(t *testing.T) {
	good := Expense{
		Amount:      Money{Cents: 100},
		Category:    CategoryMarket,
		Description: "weekly groceries",
		Date:        NewDate(2026, 8, 29),
	}
	if reasons := ValidateExpense(good); len(reasons) != 0 {
		t.Fatalf("expected valid, got %v", reasons)
	}

	empty := good
	empty.Description = "   "
	reasons := ValidateExpense(empty)
	if len(reasons) != 1 || reasons[0] != "description must not be empty" {
		t.Fatalf("got %v", reasons)
	}

	bad := Expense{Category: "spaceships"}
	reasons = ValidateExpense(bad)
	want := []string{
		"amount must be greater than zero",
		"unknown category",
		"description must not be empty",
		"date must be set",
	}
	if len(reasons) != len(want) {
		t.Fatalf("got %v, want %v", reasons, want)
	}
	for i := range want {
		if reasons[i] != want[i] {
			t.Fatalf("reason[%d] = %q, want %q", i, reasons[i], want[i])
		}
	}
}

func TestValidateCard(t *testing.T) {
	if reasons := ValidateCard(validCard()); len(reasons) != 0 {
		t.Fatalf("expected valid, got %v", reasons)
	}

	cases := []struct {
		name   string
		mutate func(*CreditCard)
		want   string
	}{
		{"empty name", func(c *CreditCard) { c.Name = "" }, "card name must not be empty"},
		{"empty bank", func(c *CreditCard) { c.Bank = "" }, "bank must not be empty"},
		{"zero limit", func(c *CreditCard) { c.Limit = Money{} }, "limit must be greater than zero"},
		{"negative debt", func(c *CreditCard) { c.CurrentDebt = Money{Cents: -1} }, "current debt must not be negative"},
		{"negative minimum", func(c *CreditCard) { c.MinimumPayment = Money{Cents: -1} }, "minimum payment must not be negative"},
		{"statement day low", func(c *CreditCard) { c.StatementDay = 0 }, "statement day must be between 1 and 31"},
		{"due day high", func(c *CreditCard) { c.DueDay = 32 }, "due day must be between 1 and 31"},
		{"bad type", func(c *CreditCard) { c.Type = "diners" }, "unknown card type"},
		{"bad color", func(c *CreditCard) { c.Color = "teal" }, "unknown card color"},
	}
	for _, tc := range cases {
		c := validCard()
		tc.mutate(&c)
		reasons := ValidateCard(c)
		if len(reasons) != 1 || reasons[0] != tc.want {
			t.Fatalf("%s: got %v, want [%q]", tc.name, reasons, tc.want)
		}
	}
}

func TestValidateTransaction(t *testing.T) {
	good := Transaction{CardID: "abc", Type: TransactionPayment, Amount: Money{Cents: 100}}
	if reasons := ValidateTransaction(good); len(reasons) != 0 {
		t.Fatalf("expected valid, got %v", reasons)
	}
	bad := Transaction{Type: "refund"}
	reasons := ValidateTransaction(bad)
	if len(reasons) != 3 {
		t.Fatalf("got %v", reasons)
	}
}
