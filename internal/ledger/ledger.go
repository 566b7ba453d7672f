// Package ledger owns the application state: expenses, credit cards,
// transactions and notification settings. All mutations go through it; it
// validates, applies the change atomically under one lock, writes through to
// the store and emits a mutation event. Reads hand out copies.
package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"takip/internal/core"
	"takip/internal/events"
	"takip/internal/store"
)

const (
	keyExpenses     = "takip:expenses"
	keyCards        = "takip:credit-cards"
	keyTransactions = "takip:transactions"
	keySettings     = "takip:notification-settings"
)

// ValidationError carries the ordered human-readable reasons a mutation was
// refused. The in-memory state is untouched when it is returned.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

type Ledger struct {
	mu sync.Mutex

	store  *store.Store   // nil means in-memory only
	events *events.Client // nil means no event publishing
	now    func() time.Time

	expenses     []core.Expense
	cards        []core.CreditCard
	transactions []core.Transaction
	settings     core.NotificationSettings
}

// New loads persisted state from the store. Missing or unreadable keys fall
// back to empty collections and default settings. Both store and events may
// be nil.
func New(ctx context.Context, st *store.Store, ev *events.Client, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	l := &Ledger{
		store:    st,
		events:   ev,
		now:      now,
		settings: core.DefaultNotificationSettings(),
	}
	if st != nil {
		st.Get(ctx, keyExpenses, &l.expenses)
		st.Get(ctx, keyCards, &l.cards)
		st.Get(ctx, keyTransactions, &l.transactions)
		st.Get(ctx, keySettings, &l.settings)
	}
	slog.InfoContext(ctx, "Ledger loaded",
		"expenses", len(l.expenses),
		"cards", len(l.cards),
		"transactions", len(l.transactions))
	return l
}

// Expenses returns a copy of the expense collection.
func (l *Ledger) Expenses() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Cards returns a copy of the card collection.
func (l *Ledger) Cards() []core.CreditCard {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.CreditCard, len(l.cards))
	copy(out, l.cards)
	return out
}

// Transactions returns a copy of the transaction collection.
func (l *Ledger) Transactions() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Settings returns the current notification settings.
func (l *Ledger) Settings() core.NotificationSettings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

// UpdateSettings replaces the notification settings.
func (l *Ledger) UpdateSettings(ctx context.Context, s core.NotificationSettings) core.NotificationSettings {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s.WarningDays < 0 {
		s.WarningDays = 0
	}
	l.settings = s
	l.persist(ctx, keySettings, l.settings)
	return l.settings
}

// Restore overwrites collections from an imported archive. Only non-nil
// slices replace state; absent sections keep what is already loaded.
func (l *Ledger) Restore(ctx context.Context, expenses *[]core.Expense, cards *[]core.CreditCard, transactions *[]core.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if expenses != nil {
		l.expenses = append([]core.Expense(nil), *expenses...)
		l.persist(ctx, keyExpenses, l.expenses)
	}
	if cards != nil {
		l.cards = append([]core.CreditCard(nil), *cards...)
		l.persist(ctx, keyCards, l.cards)
	}
	if transactions != nil {
		l.transactions = append([]core.Transaction(nil), *transactions...)
		l.persist(ctx, keyTransactions, l.transactions)
	}
	slog.InfoContext(ctx, "Ledger restored from archive",
		"expenses", len(l.expenses),
		"cards", len(l.cards),
		"transactions", len(l.transactions))
}

// persist writes through to the store. Callers hold the lock. Failures are
// already logged and swallowed inside the store.
func (l *Ledger) persist(ctx context.Context, key string, value any) {
	if l.store == nil {
		return
	}
	l.store.Set(ctx, key, value)
}

// publish emits a mutation event. Publish failures never fail the mutation.
func (l *Ledger) publish(ctx context.Context, entity, action, entityID string) {
	if err := l.events.PublishMutation(ctx, entity, action, entityID); err != nil {
		slog.WarnContext(ctx, "Failed to publish mutation event",
			"entity", entity,
			"action", action,
			"error", err)
	}
}
