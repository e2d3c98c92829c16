// Package service implements the four CRUD operations on student records
// and enforces every invariant the model carries: required name, a valid
// email shape, immutable identifier and created_at, refreshed updated_at.
//
// Every operation is a full load → mutate → save cycle against the
// Storage interface. There is no in-memory cache across calls — the file
// is the single source of truth, and the collection is small enough that
// rereading it each time is the simplest correct design.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/types"
)

// ErrNotFound is returned by GetByID and Update when no record matches
// the given identifier. Callers can distinguish it from a validation
// failure with errors.Is.
var ErrNotFound = errors.New("no student found with the given id")

// StudentService is the operations layer. The zero value is not usable;
// construct it with New.
type StudentService struct {
	storage  storage.Storage
	validate *validator.Validate
	log      *slog.Logger

	// now returns the current time already rendered in the configured
	// timestamp layout. A field rather than a direct time.Now call so
	// tests can pin the clock.
	now func() string
}

// New returns a service writing through st, logging to log, and stamping
// timestamps in the given Go reference layout.
func New(st storage.Storage, log *slog.Logger, timestampFormat string) *StudentService {
	return &StudentService{
		storage:  st,
		validate: validator.New(),
		log:      log,
		now: func() string {
			return time.Now().Format(timestampFormat)
		},
	}
}

// Add validates the input, appends a freshly-constructed record to the
// collection, and persists it. Validation runs before any write, so a
// rejected input leaves the file untouched.
//
// The returned error is a validator.ValidationErrors for bad input, or a
// wrapped storage error.
func (s *StudentService) Add(in types.NewStudent) (types.Student, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.Student{}, err
	}

	students, err := s.storage.Load()
	if err != nil {
		return types.Student{}, fmt.Errorf("Add: load: %w", err)
	}

	student := types.New(in, s.now())
	students = append(students, student)

	if err := s.storage.Save(students); err != nil {
		return types.Student{}, fmt.Errorf("Add: save: %w", err)
	}

	s.log.Info("student added", slog.String("id", student.StudentID))
	return student, nil
}

// GetAll returns the whole collection in file order, unmodified.
func (s *StudentService) GetAll() ([]types.Student, error) {
	return s.storage.Load()
}

// GetByID scans the collection for the given identifier.
// Returns ErrNotFound when nothing matches.
func (s *StudentService) GetByID(id string) (types.Student, error) {
	students, err := s.storage.Load()
	if err != nil {
		return types.Student{}, fmt.Errorf("GetByID: load: %w", err)
	}

	for _, student := range students {
		if student.StudentID == id {
			return student, nil
		}
	}

	return types.Student{}, ErrNotFound
}

// Update applies the supplied fields to the matching record and persists
// the collection. Absent (nil) fields keep their stored values; the
// identifier and created_at can never change; updated_at is refreshed on
// success.
//
// An email in the update must pass the same shape check as on add. A GPA
// that does not parse as a number becomes 0.0 rather than failing the
// operation (the ParseGPA coercion policy). Returns ErrNotFound — with no
// write — when the identifier matches nothing.
func (s *StudentService) Update(id string, upd types.StudentUpdate) (types.Student, error) {
	if err := s.validate.Struct(upd); err != nil {
		return types.Student{}, err
	}

	students, err := s.storage.Load()
	if err != nil {
		return types.Student{}, fmt.Errorf("Update: load: %w", err)
	}

	for i := range students {
		if students[i].StudentID != id {
			continue
		}

		if upd.Name != nil {
			students[i].Name = *upd.Name
		}
		if upd.Email != nil {
			students[i].Email = *upd.Email
		}
		if upd.Course != nil {
			students[i].Course = *upd.Course
		}
		if upd.YearLevel != nil {
			students[i].YearLevel = *upd.YearLevel
		}
		if upd.GPA != nil {
			students[i].GPA = types.ParseGPA(*upd.GPA)
		}
		students[i].UpdatedAt = s.now()

		if err := s.storage.Save(students); err != nil {
			return types.Student{}, fmt.Errorf("Update: save: %w", err)
		}

		s.log.Info("student updated", slog.String("id", id))
		return students[i], nil
	}

	return types.Student{}, ErrNotFound
}

// Delete removes the matching record and persists the shrunken
// collection. The boolean reports whether a removal occurred — a missing
// identifier is not an error here, and nothing is written in that case.
func (s *StudentService) Delete(id string) (bool, error) {
	students, err := s.storage.Load()
	if err != nil {
		return false, fmt.Errorf("Delete: load: %w", err)
	}

	kept := make([]types.Student, 0, len(students))
	for _, student := range students {
		if student.StudentID != id {
			kept = append(kept, student)
		}
	}

	if len(kept) == len(students) {
		return false, nil
	}

	if err := s.storage.Save(kept); err != nil {
		return false, fmt.Errorf("Delete: save: %w", err)
	}

	s.log.Info("student deleted", slog.String("id", id))
	return true, nil
}
