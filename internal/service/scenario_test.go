package service

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/storage/jsonfile"
	"github.com/aanand-mishra/student-records/internal/storage/xmlfile"
	"github.com/aanand-mishra/student-records/internal/types"
)

// End-to-end against the real flat-file backends: add → update → delete,
// the full lifecycle of one record, on both formats.
func TestStudentLifecycleOnFileBackends(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg := &config.Config{DataFile: filepath.Join(t.TempDir(), "data", "students.json")}
		store, err := jsonfile.New(cfg)
		require.NoError(t, err)
		runLifecycle(t, New(store, discardLogger(), "2006-01-02 15:04:05"))
	})

	t.Run("xml", func(t *testing.T) {
		cfg := &config.Config{DataFile: filepath.Join(t.TempDir(), "data", "students.xml")}
		store, err := xmlfile.New(cfg)
		require.NoError(t, err)
		runLifecycle(t, New(store, discardLogger(), "2006-01-02 15:04:05"))
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runLifecycle(t *testing.T, svc *StudentService) {
	t.Helper()

	added, err := svc.Add(types.NewStudent{
		Name:      "Ana Cruz",
		Email:     "ana@example.com",
		Course:    "CS",
		YearLevel: "2",
		GPA:       3.5,
	})
	require.NoError(t, err)
	assert.Len(t, added.StudentID, types.IDLength)
	assert.InDelta(t, 3.5, added.GPA, 1e-9)

	gpa := "3.8"
	_, err = svc.Update(added.StudentID, types.StudentUpdate{GPA: &gpa})
	require.NoError(t, err)

	got, err := svc.GetByID(added.StudentID)
	require.NoError(t, err)
	assert.InDelta(t, 3.8, got.GPA, 1e-9)

	removed, err := svc.Delete(added.StudentID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.GetByID(added.StudentID)
	assert.ErrorIs(t, err, ErrNotFound)
}
