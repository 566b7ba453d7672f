package derive

import (
	"sort"
	"time"

	"takip/internal/core"
)

type (
	// MonthlyStats buckets one calendar month of transactions by type.
	MonthlyStats struct {
		Month            string     `json:"month"`
		Year             int        `json:"year"`
		TotalExpenses    core.Money `json:"totalExpenses"`
		TotalPayments    core.Money `json:"totalPayments"`
		TransactionCount int        `json:"transactionCount"`
	}

	// CardStats sums a card's transactions by type.
	CardStats struct {
		CardID           string     `json:"cardId"`
		CardName         string     `json:"cardName"`
		TotalExpenses    core.Money `json:"totalExpenses"`
		TotalPayments    core.Money `json:"totalPayments"`
		TransactionCount int        `json:"transactionCount"`
	}

	// CategoryTotal sums expenses for one category.
	CategoryTotal struct {
		Category core.ExpenseCategory `json:"category"`
		Total    core.Money           `json:"total"`
		Count    int                  `json:"count"`
	}

	// CardTotals aggregates across all cards regardless of debt.
	CardTotals struct {
		TotalDebt       core.Money `json:"totalDebt"`
		TotalLimit      core.Money `json:"totalLimit"`
		TotalMinPayment core.Money `json:"totalMinPayment"`
	}
)

var monthNames = []string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// MonthName returns the localized month name for 1-12; empty otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthlyStatsSeries walks the last `months` calendar months, newest last,
// partitioning transactions into payment and expense totals per month.
func MonthlyStatsSeries(now time.Time, transactions []core.Transaction, months int) []MonthlyStats {
	out := make([]MonthlyStats, 0, months)
	for i := months - 1; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		stat := MonthlyStats{
			Month: MonthName(int(anchor.Month())),
			Year:  anchor.Year(),
		}
		for _, tx := range transactions {
			if !tx.Date.SameMonth(anchor.Year(), int(anchor.Month())) {
				continue
			}
			stat.TransactionCount++
			switch tx.Type {
			case core.TransactionExpense:
				stat.TotalExpenses.Cents += tx.Amount.Cents
			case core.TransactionPayment:
				stat.TotalPayments.Cents += tx.Amount.Cents
			}
		}
		out = append(out, stat)
	}
	return out
}

// CardStatsFor sums each card's transactions, ordered by combined volume
// descending.
func CardStatsFor(transactions []core.Transaction, cards []core.CreditCard) []CardStats {
	out := make([]CardStats, 0, len(cards))
	for _, card := range cards {
		stat := CardStats{CardID: card.ID, CardName: card.Name}
		for _, tx := range transactions {
			if tx.CardID != card.ID {
				continue
			}
			stat.TransactionCount++
			switch tx.Type {
			case core.TransactionExpense:
				stat.TotalExpenses.Cents += tx.Amount.Cents
			case core.TransactionPayment:
				stat.TotalPayments.Cents += tx.Amount.Cents
			}
		}
		out = append(out, stat)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalExpenses.Cents+out[i].TotalPayments.Cents >
			out[j].TotalExpenses.Cents+out[j].TotalPayments.Cents
	})
	return out
}

// CategoryBreakdown sums expenses per category, largest first.
func CategoryBreakdown(expenses []core.Expense) []CategoryTotal {
	byCat := map[core.ExpenseCategory]*CategoryTotal{}
	order := []core.ExpenseCategory{}
	for _, e := range expenses {
		ct, ok := byCat[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byCat[e.Category] = ct
			order = append(order, e.Category)
		}
		ct.Total.Cents += e.Amount.Cents
		ct.Count++
	}
	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCat[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.Cents > out[j].Total.Cents
	})
	return out
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []core.Expense) core.Money {
	var total core.Money
	for _, e := range expenses {
		total.Cents += e.Amount.Cents
	}
	return total
}

// MonthlyExpenseTotal sums expenses dated within the given year-month.
func MonthlyExpenseTotal(expenses []core.Expense, year, month int) core.Money {
	var total core.Money
	for _, e := range expenses {
		if e.Date.SameMonth(year, month) {
			total.Cents += e.Amount.Cents
		}
	}
	return total
}

// TotalsForCards aggregates debt, limit and minimum payment across cards.
func TotalsForCards(cards []core.CreditCard) CardTotals {
	var t CardTotals
	for _, c := range cards {
		t.TotalDebt.Cents += c.CurrentDebt.Cents
		t.TotalLimit.Cents += c.Limit.Cents
		t.TotalMinPayment.Cents += c.MinimumPayment.Cents
	}
	return t
}
