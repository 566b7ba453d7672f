package transfer

import (
	"errors"
	"testing"
	"time"

	"takip/internal/core"
)

func TestExportParseRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	expenses := []core.Expense{{
		ID: "e1", Amount: core.Money{Cents: 125_50},
		Category: core.CategoryMarket, Description: "Pazar", Date: core.NewDate(2026, 1, 18),
	}}
	cards := []core.CreditCard{{
		ID: "c1", Name: "Ana kart", Bank: "Akbank",
		Limit: core.Money{Cents: 10000_00}, CurrentDebt: core.Money{Cents: 900_00},
		MinimumPayment: core.Money{Cents: 100_00}, StatementDay: 1, DueDay: 15,
		Type: core.CardVisa, Color: core.ColorBlue,
	}}
	txs := []core.Transaction{{
		ID: "t1", CardID: "c1", Type: core.TransactionExpense,
		Amount: core.Money{Cents: 900_00}, Description: "Alışveriş", Date: core.NewDate(2026, 1, 19),
	}}

	data, err := Export(now, expenses, cards, txs).Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Expenses == nil || len(*got.Expenses) != 1 || (*got.Expenses)[0] != expenses[0] {
		t.Fatalf("expenses = %v", got.Expenses)
	}
	if got.CreditCards == nil || (*got.CreditCards)[0] != cards[0] {
		t.Fatalf("cards = %v", got.CreditCards)
	}
	if got.Transactions == nil || (*got.Transactions)[0] != txs[0] {
		t.Fatalf("transactions = %v", got.Transactions)
	}
	if !got.ExportDate.Equal(now) {
		t.Fatalf("export date = %v", got.ExportDate)
	}
}

func TestParsePartialDocument(t *testing.T) {
	got, err := Parse([]byte(`{"expenses": [], "exportDate": "2026-01-20T12:00:00Z"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Expenses == nil || len(*got.Expenses) != 0 {
		t.Fatalf("expenses = %v", got.Expenses)
	}
	if got.CreditCards != nil || got.Transactions != nil {
		t.Fatal("absent sections should stay nil")
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "{broken"},
		{"wrong shape", `[1, 2, 3]`},
		{"no sections", `{"exportDate": "2026-01-20T12:00:00Z"}`},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.data)); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("%s: error = %v", tc.name, err)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "takip-yedek-2026-01-20.json" {
		t.Fatalf("filename = %q", got)
	}
}
