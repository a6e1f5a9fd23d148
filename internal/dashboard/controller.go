// Package dashboard owns the admin dashboard's in-memory record
// collections and the mutation flow around them: permission gate first,
// optimistic local apply, then a single update-by-id store call, with a
// full collection reload when the store rejects the write.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/permission"
	"github.com/benbol/backend/internal/repository"
	"github.com/benbol/backend/internal/triage"
)

// storeTimeout bounds every store call. The mutation itself is never
// retried; a timeout surfaces as a persistence failure like any other.
const storeTimeout = 15 * time.Second

// Controller holds the five record collections fetched from the store and
// serves filtered views, statistics, and gated triage mutations over them.
//
// All access is serialized by a single mutex. There is deliberately no
// cross-operator concurrency control beyond that: two operators editing
// the same record is last write wins, with no conflict detection.
type Controller struct {
	store repository.TriageStore

	mu      sync.Mutex
	records map[model.Kind][]model.TriageRecord
}

// NewController creates a Controller with empty collections.
func NewController(store repository.TriageStore) *Controller {
	records := make(map[model.Kind][]model.TriageRecord, len(model.Kinds))
	for _, k := range model.Kinds {
		records[k] = nil
	}
	return &Controller{store: store, records: records}
}

// Load fetches all five collections. A kind whose fetch fails is left
// empty rather than stale; the first error is returned after every kind
// has been attempted.
func (c *Controller) Load(ctx context.Context) error {
	var firstErr error
	for _, kind := range model.Kinds {
		if err := c.Reload(ctx, kind); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Reload replaces one kind's collection with the store's authoritative
// state. On failure the collection is emptied.
func (c *Controller) Reload(ctx context.Context, kind model.Kind) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	records, err := c.store.List(ctx, kind)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.records[kind] = nil
		return fmt.Errorf("load %s: %w", kind, err)
	}
	c.records[kind] = records
	return nil
}

// Visible returns the records of one kind that pass the operator's filter
// toggles, preserving store order (newest first).
func (c *Controller) Visible(kind model.Kind, f triage.Filters) []model.TriageRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []model.TriageRecord{}
	for _, rec := range c.records[kind] {
		if triage.Visible(*rec.Triage(), f) {
			out = append(out, rec)
		}
	}
	return out
}

// Stats recomputes the count snapshot for one kind from the current
// collection.
func (c *Controller) Stats(kind model.Kind) model.StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return triage.Snapshot(kind, c.records[kind])
}

// StatsAll recomputes snapshots for every kind.
func (c *Controller) StatsAll() map[model.Kind]model.StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[model.Kind]model.StatsSnapshot, len(model.Kinds))
	for _, kind := range model.Kinds {
		out[kind] = triage.Snapshot(kind, c.records[kind])
	}
	return out
}

// find locates a record by id within a kind's collection. Caller holds mu.
func (c *Controller) find(kind model.Kind, id string) (model.TriageRecord, bool) {
	for _, rec := range c.records[kind] {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	return nil, false
}

// ToggleRead flips a record's read flag: gate check, optimistic local
// flip, then a single-field store patch. A store failure discards the
// optimistic state by reloading the whole collection.
func (c *Controller) ToggleRead(ctx context.Context, role model.Role, kind model.Kind, id string) (model.TriageFields, error) {
	if err := permission.Check(role, permission.OpMarkRead); err != nil {
		return model.TriageFields{}, err
	}
	return c.applyPatch(ctx, kind, id, func(t model.TriageFields) (model.TriageFields, model.TriagePatch, error) {
		next := triage.ToggleRead(t)
		return next, model.TriagePatch{IsRead: &next.IsRead}, nil
	})
}

// ToggleArchive flips a record's archived flag. Same contract as ToggleRead.
func (c *Controller) ToggleArchive(ctx context.Context, role model.Role, kind model.Kind, id string) (model.TriageFields, error) {
	if err := permission.Check(role, permission.OpArchive); err != nil {
		return model.TriageFields{}, err
	}
	return c.applyPatch(ctx, kind, id, func(t model.TriageFields) (model.TriageFields, model.TriagePatch, error) {
		next := triage.ToggleArchive(t)
		return next, model.TriagePatch{IsArchived: &next.IsArchived}, nil
	})
}

// SetStatus replaces a record's workflow status. Kinds without a status
// field reject the mutation before anything is touched.
func (c *Controller) SetStatus(ctx context.Context, role model.Role, kind model.Kind, id string, status model.Status) (model.TriageFields, error) {
	if err := permission.Check(role, permission.OpChangeStatus); err != nil {
		return model.TriageFields{}, err
	}
	return c.applyPatch(ctx, kind, id, func(t model.TriageFields) (model.TriageFields, model.TriagePatch, error) {
		next, err := triage.SetStatus(kind, t, status)
		if err != nil {
			return t, model.TriagePatch{}, err
		}
		return next, model.TriagePatch{Status: &next.Status}, nil
	})
}

// applyPatch runs the optimistic two-phase mutation: compute the new
// triage state, apply it in memory, persist the patch, and on persistence
// failure reload the collection so the local state matches the store again.
func (c *Controller) applyPatch(ctx context.Context, kind model.Kind, id string,
	mutate func(model.TriageFields) (model.TriageFields, model.TriagePatch, error)) (model.TriageFields, error) {

	c.mu.Lock()
	rec, ok := c.find(kind, id)
	if !ok {
		c.mu.Unlock()
		return model.TriageFields{}, repository.ErrNotFound
	}

	next, patch, err := mutate(*rec.Triage())
	if err != nil {
		c.mu.Unlock()
		return model.TriageFields{}, err
	}
	*rec.Triage() = next
	c.mu.Unlock()

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := c.store.UpdateTriage(storeCtx, kind, id, patch); err != nil {
		// No fine-grained rollback: discard the whole optimistic
		// collection and refetch.
		_ = c.Reload(ctx, kind)
		return model.TriageFields{}, fmt.Errorf("persist %s triage: %w", kind, err)
	}
	return next, nil
}

// Delete permanently removes a record. Admin only; the record disappears
// from the in-memory collection immediately and a store failure restores
// it via reload.
func (c *Controller) Delete(ctx context.Context, role model.Role, kind model.Kind, id string) error {
	if err := permission.Check(role, permission.OpDeleteRecord); err != nil {
		return err
	}

	c.mu.Lock()
	if _, ok := c.find(kind, id); !ok {
		c.mu.Unlock()
		return repository.ErrNotFound
	}
	kept := c.records[kind][:0:0]
	for _, rec := range c.records[kind] {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	c.records[kind] = kept
	c.mu.Unlock()

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := c.store.Delete(storeCtx, kind, id); err != nil {
		_ = c.Reload(ctx, kind)
		return fmt.Errorf("delete %s record: %w", kind, err)
	}
	return nil
}
