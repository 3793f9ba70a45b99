package testutil

import (
	"testing"
	"time"

	"github.com/amolina/tasko/internal/store"
	"github.com/amolina/tasko/internal/tracker"
)

// NewTestStore creates an in-memory SQLite store, closed when the test
// completes.
func NewTestStore(t *testing.T) *store.SQLite {
	t.Helper()
	kv, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		kv.Close()
	})
	return kv
}

// Clock is a manually advanced clock for deterministic session tests.
type Clock struct {
	Current time.Time
}

// NewClock starts a clock at a fixed, arbitrary instant.
func NewClock() *Clock {
	return &Clock{Current: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
}

// Now returns the clock's current instant.
func (c *Clock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// NewTestTracker creates a tracker over a fresh in-memory store, driven by
// the returned clock.
func NewTestTracker(t *testing.T) (*tracker.Tracker, *store.SQLite, *Clock) {
	t.Helper()
	kv := NewTestStore(t)
	clock := NewClock()
	tr, err := tracker.New(kv, tracker.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("failed to create test tracker: %v", err)
	}
	return tr, kv, clock
}
