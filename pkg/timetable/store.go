package timetable

import (
	"errors"
	"fmt"
	"sort"
)

// Entry represents a single scheduled class occupying a weekday and a
// half-open time interval [Start, End).
type Entry struct {
	Name  string  `json:"name"`
	Day   Weekday `json:"day"`
	Start Minutes `json:"start"`
	End   Minutes `json:"end"`
}

// ErrConflict is returned when an entry would overlap an existing entry on
// the same day.
var ErrConflict = errors.New("scheduling conflict")

// Validate checks the entry's own fields, independent of any store contents.
func (e Entry) Validate() error {
	if e.Name == "" {
		return errors.New("entry name must not be empty")
	}
	if e.Day < Monday || e.Day > Sunday {
		return fmt.Errorf("%w: %d", ErrInvalidDay, int(e.Day))
	}
	if e.Start < 0 || e.End > 24*60 {
		return fmt.Errorf("%w: time out of range", ErrInvalidTime)
	}
	if e.Start >= e.End {
		return fmt.Errorf("start time %s must be before end time %s", e.Start, e.End)
	}
	return nil
}

// Duration returns the length of the entry's interval.
func (e Entry) Duration() Minutes {
	return e.End - e.Start
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s-%s %s", e.Day, e.Start, e.End, e.Name)
}

// Store holds the in-memory timetable. Entries keep insertion order until
// Sort is called explicitly; nothing re-sorts behind the caller's back.
type Store struct {
	entries []Entry
}

// NewStore creates a store pre-populated with the given entries, e.g. when
// restoring persisted state. The entries are taken as-is without conflict
// checking, matching what was last saved.
func NewStore(entries ...Entry) *Store {
	s := &Store{}
	s.entries = append(s.entries, entries...)
	return s
}

// Add validates the entry and appends it, rejecting it with ErrConflict if
// it overlaps an existing entry on the same day.
func (s *Store) Add(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if s.Conflicts(e.Day, e.Start, e.End, -1) {
		return fmt.Errorf("%w: %s %s-%s overlaps an existing class", ErrConflict, e.Day, e.Start, e.End)
	}

	s.entries = append(s.entries, e)
	return nil
}

// Conflicts reports whether any stored entry on the given day overlaps the
// half-open interval [start, end). Touching endpoints do not overlap.
// excludeIndex skips one entry from the scan (pass -1 to scan all); Update
// uses it so that editing an entry in place never conflicts with itself.
func (s *Store) Conflicts(day Weekday, start, end Minutes, excludeIndex int) bool {
	for i, e := range s.entries {
		if i == excludeIndex || e.Day != day {
			continue
		}
		if !(e.End <= start || end <= e.Start) {
			return true
		}
	}
	return false
}

// Find returns the index of the first entry (in insertion order) whose
// name, day, and start time all match, or false when none does.
func (s *Store) Find(name string, day Weekday, start Minutes) (int, bool) {
	for i, e := range s.entries {
		if e.Name == name && e.Day == day && e.Start == start {
			return i, true
		}
	}
	return 0, false
}

// Remove deletes the first entry matching the (name, day, start) triple,
// returning it. The second return is false when no entry matched.
func (s *Store) Remove(name string, day Weekday, start Minutes) (Entry, bool) {
	i, ok := s.Find(name, day, start)
	if !ok {
		return Entry{}, false
	}

	removed := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return removed, true
}

// Update replaces the entry at index i after re-validating it against the
// rest of the store, so an edit that keeps the entry's own slot never
// spuriously self-conflicts.
func (s *Store) Update(i int, e Entry) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("entry index %d out of range", i)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if s.Conflicts(e.Day, e.Start, e.End, i) {
		return fmt.Errorf("%w: %s %s-%s overlaps an existing class", ErrConflict, e.Day, e.Start, e.End)
	}

	s.entries[i] = e
	return nil
}

// Sort orders entries in place by weekday (Monday first) then by start
// time. The sort is stable, so entries sharing a day and start time keep
// their relative insertion order.
func (s *Store) Sort() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].Day != s.entries[j].Day {
			return s.entries[i].Day < s.entries[j].Day
		}
		return s.entries[i].Start < s.entries[j].Start
	})
}

// ClassTotal is the aggregated weekly duration for one class name.
type ClassTotal struct {
	Name  string
	Total Minutes
}

// WeeklySummary totals each class's scheduled minutes across all days.
// Results come back in first-seen name order so output stays deterministic.
func (s *Store) WeeklySummary() []ClassTotal {
	totals := make(map[string]Minutes)
	var names []string // to maintain order of first appearance

	for _, e := range s.entries {
		if _, exists := totals[e.Name]; !exists {
			names = append(names, e.Name)
		}
		totals[e.Name] += e.Duration()
	}

	var result []ClassTotal
	for _, name := range names {
		result = append(result, ClassTotal{Name: name, Total: totals[name]})
	}

	return result
}

// Entries returns a copy of the current entries in store order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}
