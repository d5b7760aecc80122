// Package todo manages the personal task list that planctl keeps next to
// the timetable.
package todo

import (
	"errors"
	"fmt"
	"time"
)

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// priorityRank orders priorities for sorting, highest first.
var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// ParsePriority resolves a priority name, defaulting to medium for the
// empty string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q, expected low, medium or high", s)
}

// Task is a single to-do item.
type Task struct {
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Store holds the in-memory task list in insertion order.
type Store struct {
	tasks []Task
}

// NewStore creates a store pre-populated with the given tasks, e.g. when
// restoring persisted state.
func NewStore(tasks ...Task) *Store {
	s := &Store{}
	s.tasks = append(s.tasks, tasks...)
	return s
}

// Add appends a new pending task.
func (s *Store) Add(title string, priority Priority) error {
	if title == "" {
		return errors.New("task title must not be empty")
	}
	if _, ok := priorityRank[priority]; !ok {
		return fmt.Errorf("unknown priority %q", priority)
	}

	s.tasks = append(s.tasks, Task{
		Title:     title,
		Priority:  priority,
		CreatedAt: time.Now(),
	})
	return nil
}

// Complete marks the first task with the given title as done. Returns false
// when no task matched.
func (s *Store) Complete(title string) bool {
	for i := range s.tasks {
		if s.tasks[i].Title == title {
			s.tasks[i].Done = true
			return true
		}
	}
	return false
}

// Remove deletes the first task with the given title, returning it. The
// second return is false when no task matched.
func (s *Store) Remove(title string) (Task, bool) {
	for i, task := range s.tasks {
		if task.Title == title {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return task, true
		}
	}
	return Task{}, false
}

// Tasks returns a copy of the current tasks in store order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}
