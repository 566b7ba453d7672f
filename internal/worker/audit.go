// Package worker runs the audit trail consumer: it reads mutation events off
// the broker and appends them to a bounded trail in the store, so operators
// can see what changed even after the publishing process is gone.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"takip/internal/events"
	"takip/internal/store"
)

const auditKey = "takip:audit"

// AuditEntry is one recorded mutation.
type AuditEntry struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entityId"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditWorker appends mutation events to the audit trail, keeping at most
// limit entries (oldest dropped first).
type AuditWorker struct {
	mu    sync.Mutex
	store *store.Store
	limit int
}

func NewAuditWorker(st *store.Store, limit int) *AuditWorker {
	if limit < 1 {
		limit = 1
	}
	return &AuditWorker{store: st, limit: limit}
}

// HandleMutation records one event. Returning an error requeues the delivery.
func (w *AuditWorker) HandleMutation(ctx context.Context, msg *events.MutationMessage) error {
	if msg.Entity == "" || msg.Action == "" {
		return fmt.Errorf("mutation event missing entity or action")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var trail []AuditEntry
	w.store.Get(ctx, auditKey, &trail)
	trail = append(trail, AuditEntry{
		Entity:    msg.Entity,
		Action:    msg.Action,
		EntityID:  msg.EntityID,
		Timestamp: msg.Timestamp,
	})
	if len(trail) > w.limit {
		trail = trail[len(trail)-w.limit:]
	}
	w.store.Set(ctx, auditKey, trail)

	slog.InfoContext(ctx, "Recorded mutation",
		"entity", msg.Entity,
		"action", msg.Action,
		"entityId", msg.EntityID,
		"trail_size", len(trail))
	return nil
}

// Trail returns the recorded entries, oldest first.
func (w *AuditWorker) Trail(ctx context.Context) []AuditEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	var trail []AuditEntry
	w.store.Get(ctx, auditKey, &trail)
	return trail
}
