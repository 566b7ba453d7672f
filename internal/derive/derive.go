// Package derive computes every value the presentation layer shows from the
// current collections. All functions are pure: they take the relevant slice
// of state plus an explicit "now" and return fresh values, never mutating
// their inputs. Nothing here is cached; callers recompute per request.
package derive

import (
	"math"
	"sort"
	"time"

	"takip/internal/core"
)

// UpcomingPayment is one card's due-date status within a payment summary.
type UpcomingPayment struct {
	Card     core.CreditCard `json:"card"`
	DaysLeft int             `json:"daysLeft"`
	DueDate  core.Date       `json:"dueDate"`
	PastDue  bool            `json:"isPastDue"`
	Urgent   bool            `json:"isUrgent"`
}

// PaymentSummary aggregates every card currently carrying debt.
type PaymentSummary struct {
	TotalDebt           core.Money        `json:"totalDebt"`
	TotalMinimumPayment core.Money        `json:"totalMinimumPayment"`
	CardsWithDebt       int               `json:"cardsWithDebt"`
	Upcoming            []UpcomingPayment `json:"upcomingPayments"`
}

// DaysUntilDay returns the calendar days from now until the next occurrence
// of the given day-of-month: this month if the day has not yet passed,
// otherwise next month. Fractional days round up, so the result is never
// negative even across month boundaries (today Jan 31, day 5 → early Feb).
func DaysUntilDay(now time.Time, day int) int {
	target := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	if day < now.Day() {
		target = time.Date(now.Year(), now.Month()+1, day, 0, 0, 0, 0, now.Location())
	}
	return ceilDays(target.Sub(now))
}

// daysUntilThisMonth anchors the target in the current month without rolling
// forward, so a passed due day yields a negative count. The payment summary
// uses this to tag past-due cards.
func daysUntilThisMonth(now time.Time, day int) (int, core.Date) {
	target := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	return ceilDays(target.Sub(now)), core.DateOf(target)
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// Summarize builds the upcoming-payments view: one entry per card with debt,
// sorted ascending by days left so past-due and soonest cards come first.
func Summarize(now time.Time, cards []core.CreditCard) PaymentSummary {
	var s PaymentSummary
	for _, card := range cards {
		if card.CurrentDebt.Cents <= 0 {
			continue
		}
		s.CardsWithDebt++
		s.TotalDebt.Cents += card.CurrentDebt.Cents
		s.TotalMinimumPayment.Cents += card.MinimumPayment.Cents

		days, due := daysUntilThisMonth(now, card.DueDay)
		s.Upcoming = append(s.Upcoming, UpcomingPayment{
			Card:     card,
			DaysLeft: days,
			DueDate:  due,
			PastDue:  days < 0,
			Urgent:   days >= 0 && days <= 3,
		})
	}
	sort.SliceStable(s.Upcoming, func(i, j int) bool {
		return s.Upcoming[i].DaysLeft < s.Upcoming[j].DaysLeft
	})
	return s
}

// Notifications derives payment-due reminders for cards with debt whose due
// day falls inside the warning window. Disabled settings yield none.
func Notifications(now time.Time, cards []core.CreditCard, settings core.NotificationSettings) []core.Notification {
	if !settings.Enabled {
		return nil
	}
	var out []core.Notification
	for _, card := range cards {
		if card.CurrentDebt.Cents <= 0 {
			continue
		}
		days := DaysUntilDay(now, card.DueDay)
		if days < 0 || days > settings.WarningDays {
			continue
		}
		due := time.Date(now.Year(), now.Month(), card.DueDay, 0, 0, 0, 0, now.Location())
		if card.DueDay < now.Day() {
			due = time.Date(now.Year(), now.Month()+1, card.DueDay, 0, 0, 0, 0, now.Location())
		}
		out = append(out, core.Notification{
			ID:       "notification-" + card.ID,
			CardID:   card.ID,
			CardName: card.Name,
			DaysLeft: days,
			Amount:   card.MinimumPayment,
			DueDate:  core.DateOf(due),
		})
	}
	return out
}
