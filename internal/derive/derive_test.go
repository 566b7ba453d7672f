package derive

import (
	"testing"
	"time"

	"takip/internal/core"
)

func at(year, month, day, hour int) time.Time {
	return time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC)
}

func cardWith(id string, debt, minPayment int64, dueDay int) core.CreditCard {
	return core.CreditCard{
		ID:             id,
		Name:           "card-" + id,
		Bank:           "Akbank",
		Limit:          core.Money{Cents: 10000_00},
		CurrentDebt:    core.Money{Cents: debt},
		MinimumPayment: core.Money{Cents: minPayment},
		StatementDay:   1,
		DueDay:         dueDay,
		Type:           core.CardVisa,
		Color:          core.ColorBlue,
	}
}

func TestDaysUntilDay(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		day  int
		want int
	}{
		{"later this month", at(2026, 1, 10, 12), 15, 5},
		{"same day", at(2026, 1, 10, 12), 10, 0},
		{"passed, next month", at(2026, 1, 20, 12), 5, 16},
		{"month boundary never negative", at(2026, 1, 31, 12), 5, 5},
		{"tomorrow", at(2026, 1, 10, 12), 11, 1},
	}
	for _, tc := range cases {
		if got := DaysUntilDay(tc.now, tc.day); got != tc.want {
			t.Fatalf("%s: DaysUntilDay(%v, %d) = %d, want %d", tc.name, tc.now, tc.day, got, tc.want)
		}
		if got := DaysUntilDay(tc.now, tc.day); got < 0 {
			t.Fatalf("%s: negative day count %d", tc.name, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	now := at(2026, 1, 20, 12)
	cards := []core.CreditCard{
		cardWith("a", 3000_00, 500_00, 25), // 5 days out
		cardWith("b", 1000_00, 200_00, 5),  // passed this month
		cardWith("c", 0, 100_00, 21),       // no debt, excluded
		cardWith("d", 500_00, 50_00, 22),   // urgent: 2 days
	}

	s := Summarize(now, cards)
	if s.CardsWithDebt != 3 {
		t.Fatalf("cards with debt = %d", s.CardsWithDebt)
	}
	if s.TotalDebt.Cents != 4500_00 {
		t.Fatalf("total debt = %d", s.TotalDebt.Cents)
	}
	if s.TotalMinimumPayment.Cents != 750_00 {
		t.Fatalf("total minimum = %d", s.TotalMinimumPayment.Cents)
	}
	if len(s.Upcoming) != 3 {
		t.Fatalf("upcoming len = %d", len(s.Upcoming))
	}
	// Sorted ascending: past-due first.
	if s.Upcoming[0].Card.ID != "b" || !s.Upcoming[0].PastDue {
		t.Fatalf("first entry = %+v", s.Upcoming[0])
	}
	if s.Upcoming[1].Card.ID != "d" || !s.Upcoming[1].Urgent {
		t.Fatalf("second entry = %+v", s.Upcoming[1])
	}
	if s.Upcoming[2].Card.ID != "a" || s.Upcoming[2].Urgent || s.Upcoming[2].PastDue {
		t.Fatalf("third entry = %+v", s.Upcoming[2])
	}
}

func TestNotifications(t *testing.T) {
	now := at(2026, 1, 20, 12)
	cards := []core.CreditCard{
		cardWith("in-window", 3000_00, 500_00, 22),
		cardWith("outside", 3000_00, 500_00, 28),
		cardWith("no-debt", 0, 500_00, 21),
	}
	settings := core.NotificationSettings{WarningDays: 3, Enabled: true}

	got := Notifications(now, cards, settings)
	if len(got) != 1 {
		t.Fatalf("got %d notifications", len(got))
	}
	n := got[0]
	if n.CardID != "in-window" || n.DaysLeft != 2 || n.Amount.Cents != 500_00 {
		t.Fatalf("notification = %+v", n)
	}
	if n.DueDate.Format("2006-01-02") != "2026-01-22" {
		t.Fatalf("due date = %v", n.DueDate)
	}

	settings.Enabled = false
	if got := Notifications(now, cards, settings); got != nil {
		t.Fatalf("expected nil when disabled, got %v", got)
	}
}

func TestNotificationsRollToNextMonth(t *testing.T) {
	// Due day already passed: reminder points at next month's occurrence.
	now := at(2026, 1, 30, 12)
	cards := []core.CreditCard{cardWith("x", 100_00, 50_00, 1)}
	got := Notifications(now, cards, core.NotificationSettings{WarningDays: 3, Enabled: true})
	if len(got) != 1 {
		t.Fatalf("got %d notifications", len(got))
	}
	if got[0].DueDate.Format("2006-01-02") != "2026-02-01" {
		t.Fatalf("due date = %v", got[0].DueDate)
	}
	if got[0].DaysLeft != 2 {
		t.Fatalf("days left = %d", got[0].DaysLeft)
	}
}

func TestMonthlyCalendar(t *testing.T) {
	now := at(2026, 2, 10, 9) // February 2026 has 28 days
	cards := []core.CreditCard{
		cardWith("a", 3000_00, 500_00, 10),
		cardWith("b", 1000_00, 200_00, 10),
		cardWith("c", 0, 100_00, 10), // no debt: not listed
		cardWith("d", 700_00, 70_00, 28),
	}

	cal := MonthlyCalendar(now, cards)
	if len(cal) != 28 {
		t.Fatalf("calendar has %d days", len(cal))
	}
	today := cal[9]
	if !today.IsToday || today.IsPast {
		t.Fatalf("day 10 flags = %+v", today)
	}
	if len(today.Cards) != 2 || today.TotalDue.Cents != 700_00 {
		t.Fatalf("day 10 = %+v", today)
	}
	if !cal[3].IsPast || cal[3].IsToday {
		t.Fatalf("day 4 flags = %+v", cal[3])
	}
	if len(cal[27].Cards) != 1 || cal[27].Cards[0].ID != "d" {
		t.Fatalf("day 28 = %+v", cal[27])
	}
}
