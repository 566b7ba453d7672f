package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"takip/internal/core"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(context.Background(), nil, nil, fixedNow)
}

func addCard(t *testing.T, l *Ledger, name string, limit, debt, minPayment int64) core.CreditCard {
	t.Helper()
	c, err := l.AddCard(context.Background(), core.CreditCard{
		Name:           name,
		Bank:           "Akbank",
		Limit:          core.Money{Cents: limit},
		CurrentDebt:    core.Money{Cents: debt},
		MinimumPayment: core.Money{Cents: minPayment},
		StatementDay:   1,
		DueDay:         15,
		Type:           core.CardVisa,
		Color:          core.ColorBlue,
	}, "")
	if err != nil {
		t.Fatalf("AddCard(%s) error = %v", name, err)
	}
	return c
}

func TestAddExpenseAssignsIDAndDate(t *testing.T) {
	l := newTestLedger(t)
	e, err := l.AddExpense(context.Background(), core.Expense{
		Amount:      core.Money{Cents: 125_50},
		Category:    core.CategoryMarket,
		Description: "Haftalık alışveriş",
	})
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}
	if e.ID == "" {
		t.Fatal("ID not assigned")
	}
	if e.Date.Format("2006-01-02") != "2026-01-20" {
		t.Fatalf("date = %v", e.Date)
	}
	if got := l.Expenses(); len(got) != 1 || got[0].ID != e.ID {
		t.Fatalf("expenses = %v", got)
	}
}

func TestAddExpenseValidationLeavesStateUnchanged(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.AddExpense(context.Background(), core.Expense{
		Amount:   core.Money{Cents: 0},
		Category: core.CategoryMarket,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(verr.Reasons) != 2 {
		t.Fatalf("reasons = %v", verr.Reasons)
	}
	if got := l.Expenses(); len(got) != 0 {
		t.Fatalf("expenses mutated: %v", got)
	}
}

func TestUpdateExpenseUnknownID(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.UpdateExpense(context.Background(), core.Expense{
		ID:          "missing",
		Amount:      core.Money{Cents: 10_00},
		Category:    core.CategoryFood,
		Description: "x",
		Date:        core.NewDate(2026, 1, 1),
	})
	if !errors.Is(err, core.ErrUnknownExpense) {
		t.Fatalf("error = %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	l := newTestLedger(t)
	e, _ := l.AddExpense(context.Background(), core.Expense{
		Amount: core.Money{Cents: 10_00}, Category: core.CategoryFood, Description: "x",
	})
	if err := l.DeleteExpense(context.Background(), e.ID); err != nil {
		t.Fatalf("DeleteExpense() error = %v", err)
	}
	if err := l.DeleteExpense(context.Background(), e.ID); !errors.Is(err, core.ErrUnknownExpense) {
		t.Fatalf("second delete error = %v", err)
	}
}

func TestAddCardResolvesOtherBank(t *testing.T) {
	l := newTestLedger(t)

	c, err := l.AddCard(context.Background(), core.CreditCard{
		Name:         "Ek kart",
		Bank:         core.BankOther,
		Limit:        core.Money{Cents: 5000_00},
		StatementDay: 1,
		DueDay:       10,
		Type:         core.CardTroy,
		Color:        core.ColorGold,
	}, "Kuveyt Türk")
	if err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	if c.Bank != "Kuveyt Türk" {
		t.Fatalf("bank = %q", c.Bank)
	}

	_, err = l.AddCard(context.Background(), core.CreditCard{
		Name: "Eksik", Bank: core.BankOther,
		Limit: core.Money{Cents: 1000_00}, StatementDay: 1, DueDay: 10,
		Type: core.CardVisa, Color: core.ColorBlue,
	}, "   ")
	if !errors.Is(err, core.ErrBankNameMissing) {
		t.Fatalf("error = %v", err)
	}
	if got := l.Cards(); len(got) != 1 {
		t.Fatalf("cards = %v", got)
	}
}

func TestDeleteCardCascadesTransactions(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	a := addCard(t, l, "A", 10000_00, 0, 0)
	b := addCard(t, l, "B", 10000_00, 0, 0)

	l.RecordTransaction(ctx, a.ID, core.TransactionExpense, core.Money{Cents: 100_00}, "a1", AllowOverLimit)
	l.RecordTransaction(ctx, b.ID, core.TransactionExpense, core.Money{Cents: 200_00}, "b1", AllowOverLimit)
	l.RecordTransaction(ctx, a.ID, core.TransactionExpense, core.Money{Cents: 300_00}, "a2", AllowOverLimit)

	if err := l.DeleteCard(ctx, a.ID); err != nil {
		t.Fatalf("DeleteCard() error = %v", err)
	}
	txs := l.Transactions()
	if len(txs) != 1 || txs[0].CardID != b.ID {
		t.Fatalf("transactions = %v", txs)
	}
	if _, err := l.CardByID(a.ID); !errors.Is(err, core.ErrUnknownCard) {
		t.Fatalf("CardByID after delete = %v", err)
	}
}

func TestRecordTransactionDebtNeverNegative(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	c := addCard(t, l, "A", 10000_00, 500_00, 0)

	if _, err := l.RecordTransaction(ctx, c.ID, core.TransactionPayment, core.Money{Cents: 2000_00}, "overpay", RejectOverLimit); err != nil {
		t.Fatalf("RecordTransaction() error = %v", err)
	}
	got, _ := l.CardByID(c.ID)
	if got.CurrentDebt.Cents != 0 {
		t.Fatalf("debt = %d, want 0", got.CurrentDebt.Cents)
	}
}

func TestRecordTransactionOverLimitPolicies(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	c := addCard(t, l, "A", 1000_00, 900_00, 0)

	_, err := l.RecordTransaction(ctx, c.ID, core.TransactionExpense, core.Money{Cents: 200_00}, "rejected", RejectOverLimit)
	if !errors.Is(err, core.ErrOverLimit) {
		t.Fatalf("error = %v", err)
	}
	got, _ := l.CardByID(c.ID)
	if got.CurrentDebt.Cents != 900_00 {
		t.Fatalf("debt after reject = %d", got.CurrentDebt.Cents)
	}
	if len(l.Transactions()) != 0 {
		t.Fatal("rejected expense recorded a transaction")
	}

	if _, err := l.RecordTransaction(ctx, c.ID, core.TransactionExpense, core.Money{Cents: 200_00}, "allowed", AllowOverLimit); err != nil {
		t.Fatalf("allow policy error = %v", err)
	}
	got, _ = l.CardByID(c.ID)
	if got.CurrentDebt.Cents != 1100_00 {
		t.Fatalf("debt after allow = %d", got.CurrentDebt.Cents)
	}
	if got.Utilization() != 100 {
		t.Fatalf("utilization = %v, want clamped 100", got.Utilization())
	}
}

func TestRecordTransactionUnknownCard(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.RecordTransaction(context.Background(), "nope", core.TransactionExpense, core.Money{Cents: 1_00}, "x", RejectOverLimit)
	if !errors.Is(err, core.ErrUnknownCard) {
		t.Fatalf("error = %v", err)
	}
}

func TestPaymentsCommute(t *testing.T) {
	// Two payments in either order land on the same final debt.
	run := func(first, second int64) int64 {
		l := newTestLedger(t)
		ctx := context.Background()
		c := addCard(t, l, "A", 10000_00, 3000_00, 0)
		l.RecordTransaction(ctx, c.ID, core.TransactionPayment, core.Money{Cents: first}, "p1", RejectOverLimit)
		l.RecordTransaction(ctx, c.ID, core.TransactionPayment, core.Money{Cents: second}, "p2", RejectOverLimit)
		got, _ := l.CardByID(c.ID)
		return got.CurrentDebt.Cents
	}
	if a, b := run(1000_00, 500_00), run(500_00, 1000_00); a != b || a != 1500_00 {
		t.Fatalf("order changed outcome: %d vs %d", a, b)
	}
}

func TestPayAllMinimums(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	a := addCard(t, l, "A", 10000_00, 3000_00, 500_00) // pays the full minimum
	b := addCard(t, l, "B", 10000_00, 200_00, 500_00)  // clamped to remaining debt
	addCard(t, l, "C", 10000_00, 0, 500_00)            // no debt, skipped
	addCard(t, l, "D", 10000_00, 400_00, 0)            // no minimum, skipped

	count, total := l.PayAllMinimums(ctx)
	if count != 2 {
		t.Fatalf("count = %d", count)
	}
	if total.Cents != 700_00 {
		t.Fatalf("total = %d", total.Cents)
	}

	gotA, _ := l.CardByID(a.ID)
	if gotA.CurrentDebt.Cents != 2500_00 {
		t.Fatalf("card A debt = %d", gotA.CurrentDebt.Cents)
	}
	gotB, _ := l.CardByID(b.ID)
	if gotB.CurrentDebt.Cents != 0 {
		t.Fatalf("card B debt = %d", gotB.CurrentDebt.Cents)
	}

	txs := l.Transactions()
	if len(txs) != 2 {
		t.Fatalf("transactions = %v", txs)
	}
	for _, tx := range txs {
		if tx.Type != core.TransactionPayment || tx.Description != "Toplu Asgari Ödeme" {
			t.Fatalf("transaction = %+v", tx)
		}
	}

	// Nothing left to pay on A beyond its minimum; B is settled.
	count, total = l.PayAllMinimums(ctx)
	if count != 1 || total.Cents != 500_00 {
		t.Fatalf("second run = %d, %d", count, total.Cents)
	}
}

func TestUpdateSettings(t *testing.T) {
	l := newTestLedger(t)
	if s := l.Settings(); s.WarningDays != 3 || !s.Enabled {
		t.Fatalf("defaults = %+v", s)
	}
	got := l.UpdateSettings(context.Background(), core.NotificationSettings{WarningDays: -1, Enabled: false})
	if got.WarningDays != 0 || got.Enabled {
		t.Fatalf("updated = %+v", got)
	}
}

func TestRestorePartial(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	l.AddExpense(ctx, core.Expense{Amount: core.Money{Cents: 10_00}, Category: core.CategoryFood, Description: "keep"})

	cards := []core.CreditCard{{ID: "imported", Name: "İthal", Bank: "Akbank",
		Limit: core.Money{Cents: 1000_00}, StatementDay: 1, DueDay: 5,
		Type: core.CardVisa, Color: core.ColorRed}}
	l.Restore(ctx, nil, &cards, nil)

	if got := l.Expenses(); len(got) != 1 {
		t.Fatalf("expenses replaced: %v", got)
	}
	if got := l.Cards(); len(got) != 1 || got[0].ID != "imported" {
		t.Fatalf("cards = %v", got)
	}
}
