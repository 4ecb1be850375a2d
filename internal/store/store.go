// Package store is the persisted collection layer. Each entity type
// owns one storage slot holding its whole collection as a JSON array;
// every mutation is a load-modify-save of the full array. There are no
// cross-slot transactions: a consumer touching two collections issues
// two independent writes.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNoSlot is returned by Slots.Load when the slot has never been
// written.
var ErrNoSlot = errors.New("slot not found")

// ErrNotFound is returned when no record in the collection has the
// requested id.
var ErrNotFound = errors.New("record not found")

// Slots is a key-value slot backend. Implementations: PG (Postgres
// JSONB) and Memory.
type Slots interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Record is anything with a unique string id within its collection.
type Record interface {
	RecordID() string
}

// Collection binds one record type to one slot key and a seed
// dataset. A missing slot or one holding corrupt JSON silently falls
// back to the seed; only backend failures surface as errors.
type Collection[T Record] struct {
	slots Slots
	key   string
	seed  []T
}

// NewCollection creates a collection over the given slot key.
func NewCollection[T Record](slots Slots, key string, seed []T) *Collection[T] {
	return &Collection[T]{slots: slots, key: key, seed: seed}
}

// Key returns the slot key the collection persists under.
func (c *Collection[T]) Key() string { return c.key }

// Seed returns a copy of the seed dataset.
func (c *Collection[T]) Seed() []T {
	return append([]T(nil), c.seed...)
}

// Load returns the current collection, or the seed when the slot is
// absent or unparseable.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.slots.Load(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrNoSlot) {
			return c.Seed(), nil
		}
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return c.Seed(), nil
	}
	return records, nil
}

// Save overwrites the slot with the whole collection.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.slots.Save(ctx, c.key, data)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Insert appends the record and persists the collection.
func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	return c.Save(ctx, append(records, rec))
}

// Update replaces the record with the same id in place, preserving
// collection order.
func (c *Collection[T]) Update(ctx context.Context, rec T) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range records {
		if existing.RecordID() == rec.RecordID() {
			records[i] = rec
			return c.Save(ctx, records)
		}
	}
	return ErrNotFound
}

// Delete filters out exactly one record by id, leaving all others in
// their original order.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range records {
		if existing.RecordID() == id {
			return c.Save(ctx, append(records[:i], records[i+1:]...))
		}
	}
	return ErrNotFound
}
