package ledger

import (
	"context"

	"takip/internal/core"
)

// OverLimitPolicy decides what happens when an expense would push a card's
// debt past its limit. Quick spend entry rejects; the full transaction form
// allows it and lets utilization show the overrun.
type OverLimitPolicy string

const (
	RejectOverLimit OverLimitPolicy = "reject"
	AllowOverLimit  OverLimitPolicy = "allow"
)

// RecordTransaction applies a payment or expense to a card. Debt moves and
// the transaction appends in one step: either both happen or neither does.
// Payments clamp at zero debt rather than going negative.
func (l *Ledger) RecordTransaction(ctx context.Context, cardID string, typ core.TransactionType, amount core.Money, description string, policy OverLimitPolicy) (core.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := core.Transaction{
		CardID:      cardID,
		Type:        typ,
		Amount:      amount,
		Description: description,
		Date:        core.DateOf(l.now()),
	}
	if reasons := core.ValidateTransaction(tx); len(reasons) > 0 {
		return core.Transaction{}, &ValidationError{Reasons: reasons}
	}

	idx := -1
	for i := range l.cards {
		if l.cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Transaction{}, core.ErrUnknownCard
	}
	card := l.cards[idx]

	newDebt := card.CurrentDebt.Cents
	switch typ {
	case core.TransactionExpense:
		newDebt += amount.Cents
		if policy == RejectOverLimit && newDebt > card.Limit.Cents {
			return core.Transaction{}, core.ErrOverLimit
		}
	case core.TransactionPayment:
		newDebt -= amount.Cents
		if newDebt < 0 {
			newDebt = 0
		}
	}

	tx.ID = core.NewID()
	l.cards[idx].CurrentDebt = core.Money{Cents: newDebt}
	l.transactions = append(l.transactions, tx)

	l.persist(ctx, keyCards, l.cards)
	l.persist(ctx, keyTransactions, l.transactions)
	l.publish(ctx, "transaction", "created", tx.ID)
	return tx, nil
}

// PayAllMinimums records one payment per indebted card, each for the lesser
// of the card's minimum payment and its remaining debt. Returns how many
// payments were made and their total.
func (l *Ledger) PayAllMinimums(ctx context.Context) (int, core.Money) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		count int
		total core.Money
	)
	for i := range l.cards {
		card := l.cards[i]
		if card.CurrentDebt.Cents <= 0 || card.MinimumPayment.Cents <= 0 {
			continue
		}
		pay := card.MinimumPayment.Cents
		if pay > card.CurrentDebt.Cents {
			pay = card.CurrentDebt.Cents
		}

		tx := core.Transaction{
			ID:          core.NewID(),
			CardID:      card.ID,
			Type:        core.TransactionPayment,
			Amount:      core.Money{Cents: pay},
			Description: "Toplu Asgari Ödeme",
			Date:        core.DateOf(l.now()),
		}
		l.cards[i].CurrentDebt = core.Money{Cents: card.CurrentDebt.Cents - pay}
		l.transactions = append(l.transactions, tx)
		count++
		total.Cents += pay
	}

	if count > 0 {
		l.persist(ctx, keyCards, l.cards)
		l.persist(ctx, keyTransactions, l.transactions)
		l.publish(ctx, "transaction", "pay-all-minimums", "")
	}
	return count, total
}
