// Package storage persists the timetable and task list as JSON files under
// the user's data directory. Saves are full-file overwrites.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"planctl/pkg/timetable"
	"planctl/pkg/todo"
)

const (
	dataDirName   = ".planctl"
	timetableFile = "timetable.json"
	tasksFile     = "tasks.json"
)

// DataDir returns the planctl data directory under the user's home,
// creating it if needed.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, dataDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create data directory: %w", err)
	}

	return dir, nil
}

// TimetablePath returns the absolute path of the persisted timetable.
func TimetablePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, timetableFile), nil
}

// TasksPath returns the absolute path of the persisted task list.
func TasksPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tasksFile), nil
}

// LoadTimetable reads the persisted timetable. A missing file yields an
// empty store. Records that fail to decode (bad time format, unknown
// weekday) are skipped rather than aborting the load; the count of skipped
// records is returned so the caller can warn the user.
func LoadTimetable() (*timetable.Store, int, error) {
	path, err := TimetablePath()
	if err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return timetable.NewStore(), 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read timetable file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("failed to parse timetable JSON: %w", err)
	}

	var entries []timetable.Entry
	skipped := 0
	for _, r := range raw {
		var e timetable.Entry
		if err := json.Unmarshal(r, &e); err != nil || e.Validate() != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}

	return timetable.NewStore(entries...), skipped, nil
}

// SaveTimetable writes the current timetable, overwriting the file.
func SaveTimetable(store *timetable.Store) error {
	path, err := TimetablePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(store.Entries(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timetable: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timetable file: %w", err)
	}

	return nil
}

// LoadTasks reads the persisted task list. A missing file yields an empty
// store.
func LoadTasks() (*todo.Store, error) {
	path, err := TasksPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return todo.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	var tasks []todo.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks JSON: %w", err)
	}

	return todo.NewStore(tasks...), nil
}

// SaveTasks writes the current task list, overwriting the file.
func SaveTasks(store *todo.Store) error {
	path, err := TasksPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(store.Tasks(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tasks file: %w", err)
	}

	return nil
}
