package todo

import (
	"fmt"
	"sort"
)

// SortField names a task attribute the list can be ordered by. The set is
// a fixed enumeration mapped to typed accessors rather than anything
// reflective, so an unrecognized field is an error at the boundary.
type SortField string

const (
	SortByTitle    SortField = "title"
	SortByPriority SortField = "priority"
	SortByCreated  SortField = "created"
)

// lessFuncs maps each sort field to its comparison. Priority sorts
// high-to-low since that is the order people want their list in.
var lessFuncs = map[SortField]func(a, b Task) bool{
	SortByTitle:    func(a, b Task) bool { return a.Title < b.Title },
	SortByPriority: func(a, b Task) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] },
	SortByCreated:  func(a, b Task) bool { return a.CreatedAt.Before(b.CreatedAt) },
}

// SortFields returns the recognized sort field names.
func SortFields() []SortField {
	return []SortField{SortByTitle, SortByPriority, SortByCreated}
}

// SortBy stably reorders the list by the given field.
func (s *Store) SortBy(field SortField) error {
	less, ok := lessFuncs[field]
	if !ok {
		return fmt.Errorf("unknown sort field %q", field)
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return less(s.tasks[i], s.tasks[j])
	})
	return nil
}

// FilterField names a task attribute the list can be narrowed by.
type FilterField string

const (
	FilterByStatus   FilterField = "status"
	FilterByPriority FilterField = "priority"
)

// Filter returns the tasks matching the given field value, in store order.
// Status accepts "done" or "pending"; priority accepts a priority name.
func (s *Store) Filter(field FilterField, value string) ([]Task, error) {
	var match func(Task) bool

	switch field {
	case FilterByStatus:
		switch value {
		case "done":
			match = func(t Task) bool { return t.Done }
		case "pending":
			match = func(t Task) bool { return !t.Done }
		default:
			return nil, fmt.Errorf("unknown status %q, expected done or pending", value)
		}
	case FilterByPriority:
		p, err := ParsePriority(value)
		if err != nil {
			return nil, err
		}
		match = func(t Task) bool { return t.Priority == p }
	default:
		return nil, fmt.Errorf("unknown filter field %q", field)
	}

	var out []Task
	for _, t := range s.tasks {
		if match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}
