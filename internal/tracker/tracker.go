// Package tracker owns the task list and the analytics counters.
//
// All mutation goes through the operations below; callers never touch the
// records directly. Every successful mutation re-serializes the full
// owning record to the store before returning, so the durable copy always
// mirrors memory. The tracker is single-goroutine by contract: one
// interactive session (or one-shot command) per process, mutations driven
// by one event loop.
package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/amolina/tasko/internal/domain"
	"github.com/amolina/tasko/internal/store"
)

// Store keys for the two persisted records.
const (
	todosKey     = "todos"
	analyticsKey = "analytics"
)

// Tracker holds the in-memory task list and analytics counters with
// exclusive mutation rights, mirroring each change to the store.
type Tracker struct {
	kv  store.KV
	now func() time.Time

	tasks     []domain.Task
	analytics domain.Analytics
	hydrated  bool // analytics record existed in the store at load time

	// lastID makes creation-timestamp ids unique even within one
	// millisecond: each new id is bumped past the previous one.
	lastID int64
}

// Option configures a Tracker during construction.
type Option func(*Tracker)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New loads both records from the store. An absent "todos" key is an empty
// list and an absent "analytics" key leaves the record zeroed until
// StartSession seeds it; malformed JSON under either key is a fatal load
// error and propagates.
func New(kv store.KV, opts ...Option) (*Tracker, error) {
	t := &Tracker{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}

	raw, ok, err := kv.Get(todosKey)
	if err != nil {
		return nil, fmt.Errorf("loading todos: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &t.tasks); err != nil {
			return nil, fmt.Errorf("parsing todos: %w", err)
		}
	}
	for _, task := range t.tasks {
		if task.ID > t.lastID {
			t.lastID = task.ID
		}
	}

	raw, ok, err = kv.Get(analyticsKey)
	if err != nil {
		return nil, fmt.Errorf("loading analytics: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &t.analytics); err != nil {
			return nil, fmt.Errorf("parsing analytics: %w", err)
		}
		t.hydrated = true
	}

	return t, nil
}

// Now returns the tracker's current clock reading.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Tasks returns a copy of the task list in insertion order.
func (t *Tracker) Tasks() []domain.Task {
	out := make([]domain.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// Analytics returns a snapshot of the counter record.
func (t *Tracker) Analytics() domain.Analytics {
	return t.analytics
}

// StartSession runs the once-per-launch visit accounting: a fresh store
// seeds all visit counters to 1, an existing record gets its page view and
// session counts bumped, and the visitor count grows only when the gap
// since the last visit exceeds 24 hours.
func (t *Tracker) StartSession() error {
	now := t.now()
	if !t.hydrated {
		t.analytics = domain.NewAnalytics(now)
		t.hydrated = true
	} else {
		t.analytics.PageViews++
		t.analytics.SessionsCount++
		if now.UnixMilli()-t.analytics.LastVisit > domain.NewVisitorGap.Milliseconds() {
			t.analytics.TotalVisitors++
		}
		t.analytics.SessionStart = now.UnixMilli()
		t.analytics.LastVisit = now.UnixMilli()
	}
	return t.persistAnalytics()
}

// Add appends a task with the trimmed text. Empty or whitespace-only text
// is silently ignored.
func (t *Tracker) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	now := t.now()
	t.tasks = append(t.tasks, domain.Task{
		ID:        t.nextID(now),
		Text:      text,
		CreatedAt: now,
	})
	t.analytics.TodosCreated++
	if err := t.persistTasks(); err != nil {
		return err
	}
	return t.persistAnalytics()
}

// Toggle flips the completed flag of the task with the given id; unknown
// ids are a silent no-op. The completion counter grows only on the
// incomplete-to-complete transition, never shrinks.
func (t *Tracker) Toggle(id int64) error {
	for i := range t.tasks {
		if t.tasks[i].ID != id {
			continue
		}
		t.tasks[i].Completed = !t.tasks[i].Completed
		if t.tasks[i].Completed {
			t.analytics.TodosCompleted++
		}
		if err := t.persistTasks(); err != nil {
			return err
		}
		return t.persistAnalytics()
	}
	return nil
}

// Delete removes the task with the given id. The deletion counter grows
// even when the id is unknown; that quirk is part of the persisted
// contract and is kept.
func (t *Tracker) Delete(id int64) error {
	t.analytics.TodosDeleted++
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)
			if err := t.persistTasks(); err != nil {
				return err
			}
			break
		}
	}
	return t.persistAnalytics()
}

// Flush rewrites the analytics snapshot with a fresh last-visit stamp.
// It is the session-teardown write: best effort, errors dropped, never
// blocks shutdown.
func (t *Tracker) Flush() {
	t.analytics.LastVisit = t.now().UnixMilli()
	_ = t.persistAnalytics()
}

func (t *Tracker) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

func (t *Tracker) persistTasks() error {
	raw, err := json.Marshal(t.tasks)
	if err != nil {
		return fmt.Errorf("serializing todos: %w", err)
	}
	if err := t.kv.Set(todosKey, string(raw)); err != nil {
		return fmt.Errorf("persisting todos: %w", err)
	}
	return nil
}

func (t *Tracker) persistAnalytics() error {
	raw, err := json.Marshal(t.analytics)
	if err != nil {
		return fmt.Errorf("serializing analytics: %w", err)
	}
	if err := t.kv.Set(analyticsKey, string(raw)); err != nil {
		return fmt.Errorf("persisting analytics: %w", err)
	}
	return nil
}
