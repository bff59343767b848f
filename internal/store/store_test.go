package store

import (
	"context"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

func TestIDGeneratorStrictlyIncreasing(t *testing.T) {
	ctx := context.Background()
	gen := NewIDGenerator(NewMemoryCell())

	seen := make(map[uint64]bool)
	var prev uint64
	for i := 0; i < 100; i++ {
		id, err := gen.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if seen[id] {
			t.Fatalf("id %d issued twice", id)
		}
		seen[id] = true
		if i > 0 && id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
	if prev != 99 {
		t.Fatalf("expected last id 99, got %d", prev)
	}
}

func TestIDGeneratorSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cell := NewMemoryCell()

	gen := NewIDGenerator(cell)
	for i := 0; i < 5; i++ {
		if _, err := gen.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	// A fresh generator over the same cell continues where the old one
	// stopped.
	gen2 := NewIDGenerator(cell)
	id, err := gen2.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id 5 after restart, got %d", id)
	}
}

func TestStorePutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New[record](NewMemoryBackend())

	if _, ok, err := s.Get(ctx, 1); err != nil || ok {
		t.Fatalf("expected absent record, got ok=%v err=%v", ok, err)
	}

	want := record{Name: "florist", Count: 3}
	if err := s.Put(ctx, 1, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("record missing after Put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestStorePutReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	s := New[record](NewMemoryBackend())

	if err := s.Put(ctx, 7, record{Name: "caterer", Count: 2}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, 7, record{Name: "band"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, _, err := s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "band" || got.Count != 0 {
		t.Fatalf("replace left stale fields: %+v", got)
	}
}

func TestStoreScanReturnsAllEntriesOrdered(t *testing.T) {
	ctx := context.Background()
	s := New[record](NewMemoryBackend())

	ids := []uint64{9, 2, 5, 1, 14}
	for _, id := range ids {
		if err := s.Put(ctx, id, record{Count: id}); err != nil {
			t.Fatalf("Put %d: %v", id, err)
		}
	}

	entries, err := s.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != len(ids) {
		t.Fatalf("scan returned %d entries, want %d", len(entries), len(ids))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID <= entries[i-1].ID {
			t.Fatalf("scan unordered: %d after %d", entries[i].ID, entries[i-1].ID)
		}
	}
	for _, e := range entries {
		if e.Value.Count != e.ID {
			t.Fatalf("entry %d carries wrong value %+v", e.ID, e.Value)
		}
	}
}

func TestMemoryBackendCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	data := []byte(`{"name":"dj"}`)
	if err := m.Put(ctx, 1, data); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data[2] = 'X' // mutate caller's slice after Put

	got, ok, err := m.Get(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"name":"dj"}` {
		t.Fatalf("stored blob aliased caller memory: %s", got)
	}

	got[0] = 'Y' // mutate returned slice
	again, _, _ := m.Get(ctx, 1)
	if string(again) != `{"name":"dj"}` {
		t.Fatalf("returned blob aliased stored memory: %s", again)
	}
}
