package ledger

import (
	"context"

	"takip/internal/core"
)

// AddCard resolves the bank name, validates and appends a new card. When the
// bank is the "other" placeholder, customBank supplies the real name.
func (l *Ledger) AddCard(ctx context.Context, c core.CreditCard, customBank string) (core.CreditCard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bank, err := core.ResolveBank(c.Bank, customBank)
	if err != nil {
		return core.CreditCard{}, err
	}
	c.Bank = bank

	if reasons := core.ValidateCard(c); len(reasons) > 0 {
		return core.CreditCard{}, &ValidationError{Reasons: reasons}
	}

	c.ID = core.NewID()
	l.cards = append(l.cards, c)
	l.persist(ctx, keyCards, l.cards)
	l.publish(ctx, "card", "created", c.ID)
	return c, nil
}

// UpdateCard replaces the card with the same ID, applying the same bank
// resolution and validation as AddCard.
func (l *Ledger) UpdateCard(ctx context.Context, c core.CreditCard, customBank string) (core.CreditCard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.cards {
		if l.cards[i].ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.CreditCard{}, core.ErrUnknownCard
	}

	bank, err := core.ResolveBank(c.Bank, customBank)
	if err != nil {
		return core.CreditCard{}, err
	}
	c.Bank = bank

	if reasons := core.ValidateCard(c); len(reasons) > 0 {
		return core.CreditCard{}, &ValidationError{Reasons: reasons}
	}

	l.cards[idx] = c
	l.persist(ctx, keyCards, l.cards)
	l.publish(ctx, "card", "updated", c.ID)
	return c, nil
}

// DeleteCard removes a card and every transaction referencing it, so no
// transaction ever points at a missing card.
func (l *Ledger) DeleteCard(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.cards {
		if l.cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.ErrUnknownCard
	}

	l.cards = append(l.cards[:idx], l.cards[idx+1:]...)

	kept := l.transactions[:0]
	for _, tx := range l.transactions {
		if tx.CardID != id {
			kept = append(kept, tx)
		}
	}
	l.transactions = kept

	l.persist(ctx, keyCards, l.cards)
	l.persist(ctx, keyTransactions, l.transactions)
	l.publish(ctx, "card", "deleted", id)
	return nil
}

// CardByID returns the card with the given ID.
func (l *Ledger) CardByID(id string) (core.CreditCard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return core.CreditCard{}, core.ErrUnknownCard
}
