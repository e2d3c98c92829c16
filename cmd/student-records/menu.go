// The interactive numbered menu — the original face of the application.
// It collects and trims field values at prompts, hands them to the
// service, and reports each outcome without ever killing the loop: a bad
// email or an unknown ID prints a message and returns to the menu.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/student-records/internal/service"
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/aanand-mishra/student-records/internal/utils/render"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(students, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// runMenu drives the prompt loop until the user picks Exit or input runs
// out (EOF counts as a clean exit, so piped sessions terminate sensibly).
func runMenu(svc *service.StudentService, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	eof := false

	prompt := func(label string) string {
		if eof {
			return ""
		}
		fmt.Fprint(out, label)
		if !scanner.Scan() {
			eof = true
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	for {
		fmt.Fprintln(out, "\n=== Student Information System ===")
		fmt.Fprintln(out, "1. Add Student")
		fmt.Fprintln(out, "2. View All Students")
		fmt.Fprintln(out, "3. View Student by ID")
		fmt.Fprintln(out, "4. Update Student")
		fmt.Fprintln(out, "5. Delete Student")
		fmt.Fprintln(out, "6. Exit")

		choice := prompt("Enter choice (1-6): ")
		if eof {
			return nil
		}

		switch choice {
		case "1":
			menuAdd(svc, prompt, out)
		case "2":
			menuViewAll(svc, out)
		case "3":
			menuViewByID(svc, prompt, out)
		case "4":
			menuUpdate(svc, prompt, out)
		case "5":
			menuDelete(svc, prompt, out)
		case "6":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice, try again.")
		}
	}
}

func menuAdd(svc *service.StudentService, prompt func(string) string, out io.Writer) {
	fmt.Fprintln(out, "\n--- Add New Student ---")

	in := types.NewStudent{
		Name:      prompt("Name: "),
		Email:     prompt("Email: "),
		Course:    prompt("Course: "),
		YearLevel: prompt("Year Level: "),
		GPA:       types.ParseGPA(prompt("GPA (optional, press Enter to skip): ")),
	}

	student, err := svc.Add(in)
	if err != nil {
		fmt.Fprintf(out, "Error adding student: %s\n", render.ErrorMessage(err))
		return
	}
	fmt.Fprintf(out, "Student added successfully! ID: %s\n", student.StudentID)
}

func menuViewAll(svc *service.StudentService, out io.Writer) {
	fmt.Fprintln(out, "\n--- All Students ---")

	all, err := svc.GetAll()
	if err != nil {
		fmt.Fprintf(out, "Error loading students: %s\n", render.ErrorMessage(err))
		return
	}
	render.Table(out, all)
}

func menuViewByID(svc *service.StudentService, prompt func(string) string, out io.Writer) {
	id := prompt("Enter Student ID: ")

	student, err := svc.GetByID(id)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(out, "Student not found.")
		return
	}
	if err != nil {
		fmt.Fprintf(out, "Error loading student: %s\n", render.ErrorMessage(err))
		return
	}

	fmt.Fprintln(out, "\n--- Student Details ---")
	render.Student(out, student)
}

func menuUpdate(svc *service.StudentService, prompt func(string) string, out io.Writer) {
	id := prompt("Enter Student ID to update: ")

	current, err := svc.GetByID(id)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(out, "Student not found.")
		return
	}
	if err != nil {
		fmt.Fprintf(out, "Error loading student: %s\n", render.ErrorMessage(err))
		return
	}

	fmt.Fprintln(out, "Leave blank to keep current value.")

	// Blank answer = nil field = keep what is stored.
	optional := func(label, current string) *string {
		answer := prompt(fmt.Sprintf("%s [%s]: ", label, current))
		if answer == "" {
			return nil
		}
		return &answer
	}

	upd := types.StudentUpdate{
		Name:      optional("Name", current.Name),
		Email:     optional("Email", current.Email),
		Course:    optional("Course", current.Course),
		YearLevel: optional("Year Level", current.YearLevel),
		GPA:       optional("GPA", fmt.Sprintf("%g", current.GPA)),
	}

	if _, err := svc.Update(id, upd); err != nil {
		fmt.Fprintf(out, "Update failed: %s\n", render.ErrorMessage(err))
		return
	}
	fmt.Fprintln(out, "Student updated successfully.")
}

func menuDelete(svc *service.StudentService, prompt func(string) string, out io.Writer) {
	id := prompt("Enter Student ID to delete: ")

	if strings.ToLower(prompt("Are you sure? (y/n): ")) != "y" {
		fmt.Fprintln(out, "Cancelled.")
		return
	}

	removed, err := svc.Delete(id)
	if err != nil {
		fmt.Fprintf(out, "Error deleting student: %s\n", render.ErrorMessage(err))
		return
	}
	if !removed {
		fmt.Fprintln(out, "Student not found.")
		return
	}
	fmt.Fprintln(out, "Student deleted successfully.")
}
