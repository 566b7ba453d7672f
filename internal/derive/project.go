package derive

import (
	"sort"
	"strings"

	"takip/internal/core"
)

// Filter and sort projections. Each returns a new slice; inputs are never
// reordered in place.

// ExpensesInMonth keeps expenses dated within the given year-month.
func ExpensesInMonth(expenses []core.Expense, year, month int) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Date.SameMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}

// ExpensesByCategory keeps expenses of one category.
func ExpensesByCategory(expenses []core.Expense, category core.ExpenseCategory) []core.Expense {
	var out []core.Expense
	for _, e := range expenses {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// SearchExpenses keeps expenses whose description contains the query,
// case-insensitively. An empty query returns a copy of the input.
func SearchExpenses(expenses []core.Expense, query string) []core.Expense {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]core.Expense, len(expenses))
		copy(out, expenses)
		return out
	}
	var out []core.Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

// TransactionsByCard keeps transactions referencing the given card.
func TransactionsByCard(transactions []core.Transaction, cardID string) []core.Transaction {
	var out []core.Transaction
	for _, tx := range transactions {
		if tx.CardID == cardID {
			out = append(out, tx)
		}
	}
	return out
}

// TransactionsByType keeps transactions of one type.
func TransactionsByType(transactions []core.Transaction, typ core.TransactionType) []core.Transaction {
	var out []core.Transaction
	for _, tx := range transactions {
		if tx.Type == typ {
			out = append(out, tx)
		}
	}
	return out
}

// RecentTransactions returns up to limit transactions, newest first.
func RecentTransactions(transactions []core.Transaction, limit int) []core.Transaction {
	out := make([]core.Transaction, len(transactions))
	copy(out, transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortExpensesByDate orders a copy of expenses by date, newest first unless
// ascending is set.
func SortExpensesByDate(expenses []core.Expense, ascending bool) []core.Expense {
	out := make([]core.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Date.Before(out[j].Date.Time)
		}
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// SortCardsByName orders a copy of cards alphabetically.
func SortCardsByName(cards []core.CreditCard) []core.CreditCard {
	out := make([]core.CreditCard, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// SortCardsByDebt orders a copy of cards by outstanding debt, largest first
// unless ascending is set.
func SortCardsByDebt(cards []core.CreditCard, ascending bool) []core.CreditCard {
	out := make([]core.CreditCard, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].CurrentDebt.Cents < out[j].CurrentDebt.Cents
		}
		return out[i].CurrentDebt.Cents > out[j].CurrentDebt.Cents
	})
	return out
}
