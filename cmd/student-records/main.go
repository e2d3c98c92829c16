// main is the entry point of the student-records CLI.
//
// STARTUP SEQUENCE (runs before every subcommand):
//  1. Load configuration from a YAML file (--config / CONFIG_PATH)
//  2. Initialise the logger writing to the configured log file
//  3. Initialise the flat-file storage backend selected by the config
//  4. Build the service layer on top of the storage
//
// RUNNING IT:
//
//	student-records menu                        # interactive numbered menu
//	student-records add --name "Ana Cruz" --email ana@example.com \
//	    --course CS --year 2 --gpa 3.5
//	student-records list
//	student-records get 1a2b3c4d
//	student-records update 1a2b3c4d --gpa 3.8
//	student-records delete 1a2b3c4d --yes
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/service"
	"github.com/aanand-mishra/student-records/internal/storage"
)

// Shared by every subcommand, wired up in PersistentPreRunE below.
var (
	cfgPath  string
	cfg      *config.Config
	log      *slog.Logger
	students *service.StudentService
	rootCmd  *cobra.Command
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "student-records",
		Short: "Student Information System — manage student records from the terminal",
		Long: `A command-line tool for managing student records in a single flat
file (JSON or XML, selected by configuration).

Examples:
  student-records menu
  student-records add --name "Ana Cruz" --email ana@example.com --course CS --year 2
  student-records update 1a2b3c4d --gpa 3.8`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}

			log, err = setupLogger(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialise logger: %w", err)
			}

			// The service only ever sees the storage.Storage INTERFACE,
			// never a concrete backend — the factory picks jsonfile or
			// xmlfile from the config, and rejects anything else.
			store, err := storage.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialise storage: %w", err)
			}

			students = service.New(store, log, cfg.TimestampFormat)

			log.Info("storage initialised",
				slog.String("path", cfg.DataFile),
				slog.String("format", cfg.StorageFormat),
			)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to the configuration YAML file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(menuCmd)
}

// setupLogger returns a *slog.Logger writing to cfg.LogFile, configured
// for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
// The log file handle is deliberately left open for the life of the
// process; the OS closes it on exit.
func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}

	switch cfg.Env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(f, &slog.HandlerOptions{
				Level: slog.LevelInfo, // INFO and above in production
			}),
		), nil
	case "staging":
		return slog.New(
			slog.NewJSONHandler(f, &slog.HandlerOptions{
				Level: slog.LevelDebug, // more verbose in staging
			}),
		), nil
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(f, &slog.HandlerOptions{
				Level: slog.LevelDebug, // all levels in development
			}),
		), nil
	}
}
