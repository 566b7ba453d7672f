package derive

import (
	"time"

	"takip/internal/core"
)

// CalendarDay is one day of the current month's due-date calendar.
type CalendarDay struct {
	Day      int               `json:"day"`
	Cards    []core.CreditCard `json:"cards"`
	TotalDue core.Money        `json:"totalDue"`
	IsToday  bool              `json:"isToday"`
	IsPast   bool              `json:"isPast"`
}

// MonthlyCalendar lists, per day of the current month, the cards with debt
// due that day and the sum of their minimum payments. IsPast compares day
// numbers within the month only, mirroring how the calendar is rendered.
func MonthlyCalendar(now time.Time, cards []core.CreditCard) []CalendarDay {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	out := make([]CalendarDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		entry := CalendarDay{
			Day:     day,
			IsToday: day == now.Day(),
			IsPast:  day < now.Day(),
		}
		for _, card := range cards {
			if card.DueDay == day && card.CurrentDebt.Cents > 0 {
				entry.Cards = append(entry.Cards, card)
				entry.TotalDue.Cents += card.MinimumPayment.Cents
			}
		}
		out = append(out, entry)
	}
	return out
}
