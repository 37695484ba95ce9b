// Package store keeps every tracker collection in memory and mirrors each
// mutation into a snapshot slot. Reads never touch the snapshot store.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/adapter"
)

// Record is any entity the store can hold.
type Record interface {
	RecordID() uuid.UUID
}

// Collection holds one ordered slice of records backed by a snapshot slot.
// Newest records come first. All methods are safe for concurrent use.
type Collection[T Record] struct {
	mu        sync.RWMutex
	items     []T
	slot      string
	snapshots adapter.SnapshotStore
}

// NewCollection creates an empty collection bound to a snapshot slot.
func NewCollection[T Record](slot string, snapshots adapter.SnapshotStore) *Collection[T] {
	return &Collection[T]{
		slot:      slot,
		snapshots: snapshots,
	}
}

// Load replaces the in-memory slice with the slot contents. A missing or
// unparsable slot leaves the collection empty rather than failing startup.
func (c *Collection[T]) Load(ctx context.Context) error {
	data, err := c.snapshots.Load(ctx, c.slot)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(data) == 0 {
		c.items = nil
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("discarding unparsable snapshot slot",
			"slot", c.slot,
			"error", err.Error())
		c.items = nil
		return nil
	}
	c.items = items
	return nil
}

// Add prepends the record and persists the collection.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T{item}, c.items...)
	return c.persist(ctx)
}

// Update replaces the record with the same id in place. An unknown id is a
// silent no-op and nothing is persisted.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].RecordID() == item.RecordID() {
			c.items[i] = item
			return c.persist(ctx)
		}
	}
	return nil
}

// UpdateMany replaces every record whose id appears in items, preserving the
// collection order. Unknown ids are ignored. A single persist covers the
// whole batch.
func (c *Collection[T]) UpdateMany(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]T, len(items))
	for _, item := range items {
		byID[item.RecordID()] = item
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	for i := range c.items {
		if replacement, ok := byID[c.items[i].RecordID()]; ok {
			c.items[i] = replacement
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return c.persist(ctx)
}

// Delete removes the record with the given id. An unknown id is a silent
// no-op and nothing is persisted.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// ReplaceAll swaps the whole collection and persists it.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	return c.persist(ctx)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.items[i].RecordID() == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Items returns a copy of the collection in its stored order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// persist serializes the collection into its slot. Callers hold the lock.
func (c *Collection[T]) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.snapshots.Save(ctx, c.slot, data)
}
