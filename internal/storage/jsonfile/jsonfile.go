// Package jsonfile persists the student collection as a pretty-printed
// JSON array — one object per record, snake_case keys, GPA as a native
// JSON number. This is the higher-fidelity of the two formats: every
// field keeps its Go type across a save/load cycle.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/types"
)

// JSONFile is the JSON-backed implementation of storage.Storage.
type JSONFile struct {
	path string
}

// New prepares the backing file at cfg.DataFile: the containing directory
// is created if needed, and a missing file is initialised with an empty
// collection so the first Load has something well-formed to read.
func New(cfg *config.Config) (*JSONFile, error) {
	s := &JSONFile{path: cfg.DataFile}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile.New: create data dir: %w", err)
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		if err := s.Save([]types.Student{}); err != nil {
			return nil, fmt.Errorf("jsonfile.New: init empty file: %w", err)
		}
	}

	return s, nil
}

// Load reads the whole file. A missing file, malformed JSON, or a root
// that is not an array all yield an empty collection — the
// empty-on-parse-failure policy described in the storage package.
func (s *JSONFile) Load() ([]types.Student, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.Student{}, nil
		}
		return nil, fmt.Errorf("jsonfile.Load: read %s: %w", s.path, err)
	}

	var students []types.Student
	if err := json.Unmarshal(data, &students); err != nil {
		// Corrupt or wrong-shaped content. Recover as empty.
		return []types.Student{}, nil
	}
	if students == nil {
		// The file held a literal "null". Still an empty collection,
		// and callers never see a nil slice.
		students = []types.Student{}
	}

	return students, nil
}

// Save overwrites the file with the full collection, indented two spaces.
func (s *JSONFile) Save(students []types.Student) error {
	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile.Save: marshal: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile.Save: write %s: %w", s.path, err)
	}

	return nil
}
