// Package render provides helpers for writing consistent terminal output.
//
// Every command in this application prints records, tables, or error
// messages. Rather than repeating the formatting in each command and in
// the interactive menu, we centralise it here — the same record looks the
// same everywhere it is shown.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-records/internal/types"
)

// Table writes the collection as aligned columns, one student per line.
// An empty collection prints a friendly notice instead of a bare header.
func Table(w io.Writer, students []types.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCOURSE\tYEAR\tGPA")
	for _, s := range students {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
			s.StudentID, s.Name, s.Email, s.Course, s.YearLevel, s.GPA)
	}
	tw.Flush()
}

// Student writes the full field-by-field dump of one record, using the
// same snake_case field names the storage formats use.
func Student(w io.Writer, s types.Student) {
	fmt.Fprintf(w, "student_id: %s\n", s.StudentID)
	fmt.Fprintf(w, "name:       %s\n", s.Name)
	fmt.Fprintf(w, "email:      %s\n", s.Email)
	fmt.Fprintf(w, "course:     %s\n", s.Course)
	fmt.Fprintf(w, "year_level: %s\n", s.YearLevel)
	fmt.Fprintf(w, "gpa:        %g\n", s.GPA)
	fmt.Fprintf(w, "created_at: %s\n", s.CreatedAt)
	fmt.Fprintf(w, "updated_at: %s\n", s.UpdatedAt)
}

// ErrorMessage converts any error coming out of the service layer into a
// single human-readable line. Validation failures get the friendly
// per-field treatment; everything else falls back to err.Error().
func ErrorMessage(err error) string {
	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		return ValidationError(validateErrs)
	}
	return err.Error()
}

// ValidationError converts a slice of validator.FieldError values into
// one descriptive sentence.
//
// The go-playground/validator package returns one FieldError per failing
// struct field. We convert each to plain English and join them with ", "
// so the user sees a single line.
//
// Example output:
//
//	field Name is required, field Email must be a valid email address
func ValidationError(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		// "required" tag — field was missing or zero-valued
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		// "email" tag — field did not match email format
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		// Catch-all for any other validation tag (min, max, len, etc.)
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}
