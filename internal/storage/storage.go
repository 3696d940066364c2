// Package storage persists the task list as a single JSON file with
// atomic write support using the temp file + fsync + rename pattern.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/todoz-cli/todoz/internal/task"
)

// ErrCorrupt is returned when the todos file exists but cannot be
// parsed as a JSON task array.
var ErrCorrupt = errors.New("todos file is not valid JSON")

const (
	dirName  = ".todoz"
	fileName = "todos.json"
)

// DefaultPath returns the per-user todos file location,
// <home>/.todoz/todos.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the task list from path. A missing file is a first run,
// not an error: it yields an empty list. A present but unparsable file
// yields an error wrapping ErrCorrupt.
func Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading todos file: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	return tasks, nil
}

// Save writes tasks to path as an indented JSON array, creating the
// parent directory if missing. It writes to a temp file in the same
// directory, fsyncs, then renames over the target so a crash never
// leaves a half-written todos file.
func Save(path string, tasks []task.Task) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".todos-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file on error.
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
