package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"takip/internal/events"
	"takip/internal/store"
)

func newTestWorker(t *testing.T, limit int) *AuditWorker {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "takip.db"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewAuditWorker(st, limit)
}

func TestHandleMutationAppends(t *testing.T) {
	w := newTestWorker(t, 10)
	ctx := context.Background()

	msg := events.NewMutationMessage("expense", "created", "e1")
	if err := w.HandleMutation(ctx, msg); err != nil {
		t.Fatalf("HandleMutation() error = %v", err)
	}
	if err := w.HandleMutation(ctx, events.NewMutationMessage("card", "deleted", "c1")); err != nil {
		t.Fatalf("HandleMutation() error = %v", err)
	}

	trail := w.Trail(ctx)
	if len(trail) != 2 {
		t.Fatalf("trail = %v", trail)
	}
	if trail[0].Entity != "expense" || trail[0].Action != "created" || trail[0].EntityID != "e1" {
		t.Fatalf("first entry = %+v", trail[0])
	}
	if trail[1].Entity != "card" {
		t.Fatalf("second entry = %+v", trail[1])
	}
}

func TestHandleMutationBoundsTrail(t *testing.T) {
	w := newTestWorker(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		msg := &events.MutationMessage{
			Entity:    "expense",
			Action:    "created",
			EntityID:  string(rune('a' + i)),
			Timestamp: time.Now(),
		}
		if err := w.HandleMutation(ctx, msg); err != nil {
			t.Fatalf("HandleMutation() error = %v", err)
		}
	}

	trail := w.Trail(ctx)
	if len(trail) != 3 {
		t.Fatalf("trail length = %d", len(trail))
	}
	// Oldest entries dropped.
	if trail[0].EntityID != "c" || trail[2].EntityID != "e" {
		t.Fatalf("trail = %+v", trail)
	}
}

func TestHandleMutationRejectsEmpty(t *testing.T) {
	w := newTestWorker(t, 10)
	if err := w.HandleMutation(context.Background(), &events.MutationMessage{}); err == nil {
		t.Fatal("expected error for empty event")
	}
	if got := w.Trail(context.Background()); len(got) != 0 {
		t.Fatalf("trail = %v", got)
	}
}
