package core

import (
	"errors"
	"time"
)

const (
	// TransactionPayment decreases a card's debt, TransactionExpense increases it.
	TransactionPayment TransactionType = "payment"
	TransactionExpense TransactionType = "expense"
)

type (
	TransactionType string
	ExpenseCategory string
	CardType        string
	CardColor       string

	// Date is a calendar day. It marshals as ISO YYYY-MM-DD.
	Date struct {
		time.Time
	}

	// Expense is one discretionary outlay, owned by the expense collection.
	Expense struct {
		ID          string          `json:"id"`
		Amount      Money           `json:"amount"`
		Category    ExpenseCategory `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
	}

	// CreditCard is one credit account. AvailableCredit and Utilization are
	// derived, never stored.
	CreditCard struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Bank           string    `json:"bank"`
		Limit          Money     `json:"limit"`
		CurrentDebt    Money     `json:"currentDebt"`
		MinimumPayment Money     `json:"minimumPayment"`
		StatementDay   int       `json:"statementDate"` // day of month, 1-31
		DueDay         int       `json:"dueDate"`       // day of month, 1-31
		Type           CardType  `json:"cardType"`
		Color          CardColor `json:"color"`
	}

	// Transaction is one balance-affecting event against a card. Immutable
	// once created; removed only when its card is deleted.
	Transaction struct {
		ID          string          `json:"id"`
		CardID      string          `json:"cardId"`
		Type        TransactionType `json:"type"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
	}

	// Notification is a derived payment-due reminder. Never persisted.
	Notification struct {
		ID       string `json:"id"`
		CardID   string `json:"cardId"`
		CardName string `json:"cardName"`
		DaysLeft int    `json:"daysLeft"`
		Amount   Money  `json:"amount"`
		DueDate  Date   `json:"dueDate"`
	}

	NotificationSettings struct {
		WarningDays int  `json:"warningDays"`
		Enabled     bool `json:"enabled"`
	}
)

var (
	ErrUnknownCard     = errors.New("unknown card")
	ErrUnknownExpense  = errors.New("unknown expense")
	ErrOverLimit       = errors.New("expense exceeds card limit")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrBankNameMissing = errors.New("bank name required when bank is other")
)

// DefaultNotificationSettings is the warning window applied until the user
// changes it.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{WarningDays: 3, Enabled: true}
}

// NewDate builds a Date in UTC. Out-of-range days normalize the way
// time.Date does: day 31 of a 30-day month rolls into the next month.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New("date must be a JSON string")
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// SameMonth reports whether the date falls in the given year and month.
func (d Date) SameMonth(year, month int) bool {
	return d.Year() == year && int(d.Month()) == month
}

// AvailableCredit is limit minus debt, floored at zero.
func (c CreditCard) AvailableCredit() Money {
	avail := c.Limit.Cents - c.CurrentDebt.Cents
	if avail < 0 {
		avail = 0
	}
	return Money{Cents: avail}
}

// Utilization is debt as a percentage of limit, clamped to [0, 100].
// A zero limit yields 0 rather than a division error.
func (c CreditCard) Utilization() float64 {
	if c.Limit.Cents <= 0 {
		return 0
	}
	pct := float64(c.CurrentDebt.Cents) / float64(c.Limit.Cents) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
