package ledger

import (
	"context"

	"takip/internal/core"
)

// AddExpense validates and appends a new expense. The ID is assigned here;
// a zero date defaults to today.
func (l *Ledger) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Date.IsZero() {
		e.Date = core.DateOf(l.now())
	}
	if reasons := core.ValidateExpense(e); len(reasons) > 0 {
		return core.Expense{}, &ValidationError{Reasons: reasons}
	}

	e.ID = core.NewID()
	l.expenses = append(l.expenses, e)
	l.persist(ctx, keyExpenses, l.expenses)
	l.publish(ctx, "expense", "created", e.ID)
	return e, nil
}

// UpdateExpense replaces the expense with the same ID.
func (l *Ledger) UpdateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.expenses {
		if l.expenses[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Expense{}, core.ErrUnknownExpense
	}
	if reasons := core.ValidateExpense(e); len(reasons) > 0 {
		return core.Expense{}, &ValidationError{Reasons: reasons}
	}

	l.expenses[idx] = e
	l.persist(ctx, keyExpenses, l.expenses)
	l.publish(ctx, "expense", "updated", e.ID)
	return e, nil
}

// DeleteExpense removes the expense with the given ID.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.expenses {
		if l.expenses[i].ID != id {
			continue
		}
		l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
		l.persist(ctx, keyExpenses, l.expenses)
		l.publish(ctx, "expense", "deleted", id)
		return nil
	}
	return core.ErrUnknownExpense
}
