// CRUD subcommands. Each one is a thin wrapper: collect already-trimmed
// field values, call the service, render whatever comes back. All record
// semantics (validation, timestamps, not-found vs validation errors) live
// in internal/service.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/aanand-mishra/student-records/internal/utils/render"
)

// cliError rewraps a service error so cobra prints the friendly,
// single-line form instead of validator's raw message.
func cliError(err error) error {
	return errors.New(render.ErrorMessage(err))
}

// ─────────────────────────────────────────────────────────────────────────────
// add — create a new student record
// ─────────────────────────────────────────────────────────────────────────────

var (
	addName   string
	addEmail  string
	addCourse string
	addYear   string
	addGPA    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new student record",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, err := students.Add(types.NewStudent{
			Name:      strings.TrimSpace(addName),
			Email:     strings.TrimSpace(addEmail),
			Course:    strings.TrimSpace(addCourse),
			YearLevel: strings.TrimSpace(addYear),
			GPA:       types.ParseGPA(addGPA),
		})
		if err != nil {
			return cliError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"Student added successfully! ID: %s\n", student.StudentID)
		return nil
	},
}

// ─────────────────────────────────────────────────────────────────────────────
// list — table of all records, in file order
// ─────────────────────────────────────────────────────────────────────────────

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all student records",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := students.GetAll()
		if err != nil {
			return cliError(err)
		}
		render.Table(cmd.OutOrStdout(), all)
		return nil
	},
}

// ─────────────────────────────────────────────────────────────────────────────
// get — full field dump of one record
// ─────────────────────────────────────────────────────────────────────────────

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one student record by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, err := students.GetByID(strings.TrimSpace(args[0]))
		if err != nil {
			return cliError(err)
		}
		render.Student(cmd.OutOrStdout(), student)
		return nil
	},
}

// ─────────────────────────────────────────────────────────────────────────────
// update — partial update: only flags that were actually set are applied
// ─────────────────────────────────────────────────────────────────────────────

var (
	updName   string
	updEmail  string
	updCourse string
	updYear   string
	updGPA    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing student record",
	Long: `Update one or more fields of an existing record. Only the flags you
set are applied; everything else keeps its stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags().Changed distinguishes "--gpa 0" from "flag not given",
		// which is exactly the present/absent split StudentUpdate needs.
		var upd types.StudentUpdate
		flags := cmd.Flags()
		if flags.Changed("name") {
			upd.Name = &updName
		}
		if flags.Changed("email") {
			upd.Email = &updEmail
		}
		if flags.Changed("course") {
			upd.Course = &updCourse
		}
		if flags.Changed("year") {
			upd.YearLevel = &updYear
		}
		if flags.Changed("gpa") {
			upd.GPA = &updGPA
		}

		student, err := students.Update(strings.TrimSpace(args[0]), upd)
		if err != nil {
			return cliError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Student updated successfully.")
		render.Student(cmd.OutOrStdout(), student)
		return nil
	},
}

// ─────────────────────────────────────────────────────────────────────────────
// delete — remove a record, with a confirmation prompt unless --yes
// ─────────────────────────────────────────────────────────────────────────────

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a student record by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		out := cmd.OutOrStdout()

		if !deleteYes {
			fmt.Fprintf(out, "Delete student %s? (y/n): ", id)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		removed, err := students.Delete(id)
		if err != nil {
			return cliError(err)
		}
		if !removed {
			fmt.Fprintln(out, "Student not found.")
			return nil
		}

		fmt.Fprintln(out, "Student deleted successfully.")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "student's full name (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "student's email address (required)")
	addCmd.Flags().StringVar(&addCourse, "course", "", "course the student is enrolled in")
	addCmd.Flags().StringVar(&addYear, "year", "", "year level")
	addCmd.Flags().StringVar(&addGPA, "gpa", "", "grade point average (defaults to 0.0)")

	updateCmd.Flags().StringVar(&updName, "name", "", "new name")
	updateCmd.Flags().StringVar(&updEmail, "email", "", "new email address")
	updateCmd.Flags().StringVar(&updCourse, "course", "", "new course")
	updateCmd.Flags().StringVar(&updYear, "year", "", "new year level")
	updateCmd.Flags().StringVar(&updGPA, "gpa", "", "new grade point average")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
