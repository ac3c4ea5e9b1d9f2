package task

import "time"

// Store is an ordered, in-memory collection of tasks.
// It is not safe for concurrent use.
type Store struct {
	tasks []Task
}

// NewStore returns a store holding tasks in the given order.
func NewStore(tasks ...Task) *Store {
	s := &Store{}
	s.Replace(tasks)
	return s
}

// Add creates a task from the given fields and appends it.
func (s *Store) Add(name, description string, date time.Time) Task {
	t := New(name, description, date)
	s.tasks = append(s.tasks, t)
	return t
}

// DeleteAt removes the tasks at the given offsets. All offsets refer to the
// order before any removal. Out-of-range and repeated offsets are ignored.
// It returns the number of tasks removed.
func (s *Store) DeleteAt(offsets ...int) int {
	if len(offsets) == 0 || len(s.tasks) == 0 {
		return 0
	}

	drop := make(map[int]struct{}, len(offsets))
	for _, off := range offsets {
		if off < 0 || off >= len(s.tasks) {
			continue
		}
		drop[off] = struct{}{}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]Task, 0, len(s.tasks)-len(drop))
	for i, t := range s.tasks {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return len(drop)
}

// All returns a copy of the tasks in insertion order.
func (s *Store) All() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// At returns the task at offset i.
func (s *Store) At(i int) (Task, bool) {
	if i < 0 || i >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Replace swaps the store contents for a copy of tasks.
func (s *Store) Replace(tasks []Task) {
	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
}
