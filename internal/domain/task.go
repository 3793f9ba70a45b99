package domain

import (
	"fmt"
	"time"
)

// Task is a single user-entered item in the list.
// Collection order is insertion order and is never reordered.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ValidFilters is the canonical set of accepted filter strings.
var ValidFilters = map[string]bool{
	"all": true, "active": true, "completed": true,
}

// ParseFilter validates a user-supplied filter string.
func ParseFilter(s string) (Filter, error) {
	if !ValidFilters[s] {
		return "", fmt.Errorf("invalid filter %q (want all, active or completed)", s)
	}
	return Filter(s), nil
}

// Next cycles all → active → completed → all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Apply returns the subset of tasks matching the filter, preserving the
// input order. FilterAll returns the input slice unchanged.
func (f Filter) Apply(tasks []Task) []Task {
	if f == FilterAll {
		return tasks
	}
	wantCompleted := f == FilterCompleted
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == wantCompleted {
			out = append(out, t)
		}
	}
	return out
}

// CountActive returns the number of tasks with Completed=false.
func CountActive(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
