// Package store implements the keyed aggregate stores and the shared
// identity generator. Aggregates are serialized to JSON and handed to an
// injected byte-level backend; the byte layout is an implementation detail,
// not a compatibility contract. Callers are expected to serialize their own
// read-modify-write sequences — the store itself performs no merging and
// every Put replaces the whole record.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Backend is the injected persistence substrate: a durable mapping from
// uint64 keys to opaque byte blobs. Implementations must make every Put
// durable before returning.
type Backend interface {
	// Get returns the blob stored under id, or ok=false when absent.
	Get(ctx context.Context, id uint64) (data []byte, ok bool, err error)
	// Put inserts or fully replaces the blob under id. Last write wins.
	Put(ctx context.Context, id uint64, data []byte) error
	// Scan invokes fn once for every current entry.
	Scan(ctx context.Context, fn func(id uint64, data []byte) error) error
}

// Cell is durable storage for a single uint64 value, used by the identity
// counter.
type Cell interface {
	Get(ctx context.Context) (uint64, error)
	Set(ctx context.Context, v uint64) error
}

// IDGenerator issues globally unique, strictly increasing identifiers
// shared by every entity kind. The counter lives in a durable Cell so
// issued ids are never reused across restarts. Callers must serialize
// access; the generator itself holds no lock.
type IDGenerator struct {
	cell Cell
}

// NewIDGenerator wraps the given durable cell.
func NewIDGenerator(cell Cell) *IDGenerator { return &IDGenerator{cell: cell} }

// Next returns the current counter value and durably advances it by one.
// Counter exhaustion is a programming-level invariant violation, not a
// recoverable error, and panics.
func (g *IDGenerator) Next(ctx context.Context) (uint64, error) {
	current, err := g.cell.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("id generator: read counter: %w", err)
	}
	if current == math.MaxUint64 {
		panic("id generator: identifier space exhausted")
	}
	if err := g.cell.Set(ctx, current+1); err != nil {
		return 0, fmt.Errorf("id generator: advance counter: %w", err)
	}
	return current, nil
}

// Entry pairs a key with its decoded value, as yielded by Scan.
type Entry[V any] struct {
	ID    uint64
	Value V
}

// Store is a typed keyed aggregate store over a byte-level backend.
type Store[V any] struct {
	backend Backend
}

// New constructs a Store for value type V on top of backend.
func New[V any](backend Backend) *Store[V] {
	return &Store[V]{backend: backend}
}

// Get returns the value stored under id, or ok=false when absent. The
// returned value is freshly decoded and shares no memory with the store.
func (s *Store[V]) Get(ctx context.Context, id uint64) (V, bool, error) {
	var v V
	data, ok, err := s.backend.Get(ctx, id)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("store: decode record %d: %w", id, err)
	}
	return v, true, nil
}

// Put inserts or fully replaces the value under id.
func (s *Store[V]) Put(ctx context.Context, id uint64, v V) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode record %d: %w", id, err)
	}
	return s.backend.Put(ctx, id, data)
}

// Scan returns a snapshot of all current entries ordered by id.
func (s *Store[V]) Scan(ctx context.Context) ([]Entry[V], error) {
	var entries []Entry[V]
	err := s.backend.Scan(ctx, func(id uint64, data []byte) error {
		var v V
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("store: decode record %d: %w", id, err)
		}
		entries = append(entries, Entry[V]{ID: id, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
