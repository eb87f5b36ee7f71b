// Package storage persists the task collection as a single JSON file.
// Every call reads or replaces the whole collection; there is no partial
// persistence and no cross-process locking (last writer wins).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rubenagostinho/taskr/pkg/models"
)

// TaskStore defines load/save access to the durable task collection.
type TaskStore interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
	// LastError reports the degradation reason of the most recent Load,
	// or nil. A corrupt or unreadable data file degrades to an empty
	// collection rather than failing the operation.
	LastError() error
}

type fileTaskStore struct {
	path    string
	lastErr error
}

// NewFileTaskStore creates a TaskStore backed by the JSON array file at path.
// The file is created on first Save; a missing file reads as empty.
func NewFileTaskStore(path string) TaskStore {
	return &fileTaskStore{path: path}
}

// Load reads the whole collection. A missing file is an empty collection. A
// read or parse failure is reported on stderr and degraded to an empty
// collection so a damaged data file never bricks the tool; the cause is
// retrievable via LastError.
func (s *fileTaskStore) Load() ([]models.Task, error) {
	s.lastErr = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		s.lastErr = fmt.Errorf("reading %s: %w", s.path, err)
		fmt.Fprintf(os.Stderr, "warning: %v; starting with an empty task list\n", s.lastErr)
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.lastErr = fmt.Errorf("parsing %s: %w", s.path, err)
		fmt.Fprintf(os.Stderr, "warning: %v; starting with an empty task list\n", s.lastErr)
		return []models.Task{}, nil
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Save replaces the whole collection on disk, writing to a temporary file in
// the same directory and renaming it over the target so a crashed write
// never leaves a half-written data file.
func (s *fileTaskStore) Save(tasks []models.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

func (s *fileTaskStore) LastError() error {
	return s.lastErr
}
