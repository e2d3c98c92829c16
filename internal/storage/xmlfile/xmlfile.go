// Package xmlfile persists the student collection as a tag-per-field XML
// document:
//
//	<students>
//	  <student>
//	    <student_id>1a2b3c4d</student_id>
//	    <name>Ana Cruz</name>
//	    ...
//	    <gpa>3.5</gpa>
//	  </student>
//	</students>
//
// Every value is element text, so this format is string-typed on disk.
// GPA is parsed back to float64 on load (0.0 when the text does not parse);
// all other fields round-trip as strings. That type-fidelity asymmetry
// versus the JSON backend is inherent to the encoding, not a bug.
package xmlfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/types"
)

// record is the on-disk shape of one student. GPA is a string here so a
// malformed value degrades to 0.0 instead of failing the whole document.
type record struct {
	StudentID string `xml:"student_id"`
	Name      string `xml:"name"`
	Email     string `xml:"email"`
	Course    string `xml:"course"`
	YearLevel string `xml:"year_level"`
	GPA       string `xml:"gpa"`
	CreatedAt string `xml:"created_at"`
	UpdatedAt string `xml:"updated_at"`
}

// document is the root container element.
type document struct {
	XMLName xml.Name `xml:"students"`
	Records []record `xml:"student"`
}

// XMLFile is the XML-backed implementation of storage.Storage.
type XMLFile struct {
	path string
}

// New prepares the backing file at cfg.DataFile, creating the containing
// directory and an empty <students> document when the file is absent.
func New(cfg *config.Config) (*XMLFile, error) {
	s := &XMLFile{path: cfg.DataFile}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("xmlfile.New: create data dir: %w", err)
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		if err := s.Save([]types.Student{}); err != nil {
			return nil, fmt.Errorf("xmlfile.New: init empty file: %w", err)
		}
	}

	return s, nil
}

// Load reads the whole document. Missing file, malformed XML, or a root
// element other than <students> all recover as an empty collection
// (empty-on-parse-failure, same policy as the JSON backend).
func (s *XMLFile) Load() ([]types.Student, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.Student{}, nil
		}
		return nil, fmt.Errorf("xmlfile.Load: read %s: %w", s.path, err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return []types.Student{}, nil
	}

	students := make([]types.Student, 0, len(doc.Records))
	for _, r := range doc.Records {
		gpa, err := strconv.ParseFloat(r.GPA, 64)
		if err != nil {
			gpa = 0.0
		}
		students = append(students, types.Student{
			StudentID: r.StudentID,
			Name:      r.Name,
			Email:     r.Email,
			Course:    r.Course,
			YearLevel: r.YearLevel,
			GPA:       gpa,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	return students, nil
}

// Save overwrites the file with the full collection, indented two spaces,
// preceded by the standard XML header.
func (s *XMLFile) Save(students []types.Student) error {
	doc := document{Records: make([]record, 0, len(students))}
	for _, st := range students {
		doc.Records = append(doc.Records, record{
			StudentID: st.StudentID,
			Name:      st.Name,
			Email:     st.Email,
			Course:    st.Course,
			YearLevel: st.YearLevel,
			GPA:       strconv.FormatFloat(st.GPA, 'f', -1, 64),
			CreatedAt: st.CreatedAt,
			UpdatedAt: st.UpdatedAt,
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("xmlfile.Save: marshal: %w", err)
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')

	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("xmlfile.Save: write %s: %w", s.path, err)
	}

	return nil
}
