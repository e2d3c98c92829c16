// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the CLI, storage, and service layers can all import types without
// depending on each other.
package types

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDLength is the length of a generated student identifier.
// A truncated UUID is short enough to type at a prompt while still being
// unique for a single-user collection of this size.
const IDLength = 8

// Student represents one student record.
//
// The json:"..." tags double as the canonical field names — the same
// snake_case names appear as element tags in the XML storage format, so a
// record keeps its shape regardless of which backend wrote it.
//
// CreatedAt and UpdatedAt are stored as already-formatted strings rather
// than time.Time: the on-disk format is a fixed textual layout chosen by
// configuration, and nothing in the system does date arithmetic on them.
type Student struct {
	StudentID string  `json:"student_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Course    string  `json:"course"`
	YearLevel string  `json:"year_level"`
	GPA       float64 `json:"gpa"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// NewStudent is the add-time input for a record.
//
// The validate:"..." tags are checked by go-playground/validator in the
// service layer. Course and YearLevel are deliberately free-form.
type NewStudent struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Course    string
	YearLevel string
	GPA       float64
}

// StudentUpdate is an explicit partial update: one optional field per
// mutable attribute. A nil pointer means "leave the stored value alone".
// Only these five attributes can ever change — the identifier and
// created_at have no slot here on purpose.
//
// GPA arrives as text because it is typed at a prompt; see ParseGPA for
// the coercion policy.
type StudentUpdate struct {
	Name      *string
	Email     *string `validate:"omitempty,email"`
	Course    *string
	YearLevel *string
	GPA       *string
}

// New constructs a Student from add-time input. The identifier is freshly
// generated and both timestamps are stamped with now, so a just-created
// record always has created_at == updated_at.
func New(in NewStudent, now string) Student {
	return Student{
		StudentID: NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Course:    in.Course,
		YearLevel: in.YearLevel,
		GPA:       in.GPA,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewID returns a new short student identifier: the first IDLength
// characters of a random UUID.
func NewID() string {
	return uuid.NewString()[:IDLength]
}

// ParseGPA converts free-text GPA input to a float64.
//
// Unparseable or blank input is normalised to 0.0 instead of rejected.
// This single helper is used on both the add and update paths so the
// coercion policy stays uniform.
func ParseGPA(s string) float64 {
	gpa, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return gpa
}
