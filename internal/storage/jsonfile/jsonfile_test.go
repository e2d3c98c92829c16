package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/types"
)

func newTestStore(t *testing.T) (*JSONFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "students.json")
	store, err := New(&config.Config{DataFile: path})
	require.NoError(t, err)
	return store, path
}

func sampleStudents() []types.Student {
	return []types.Student{
		{
			StudentID: "1a2b3c4d",
			Name:      "Ana Cruz",
			Email:     "ana@example.com",
			Course:    "CS",
			YearLevel: "2",
			GPA:       3.5,
			CreatedAt: "2024-03-01 10:00:00",
			UpdatedAt: "2024-03-01 10:00:00",
		},
		{
			StudentID: "5e6f7a8b",
			Name:      "Bea Santos",
			Email:     "bea@example.com",
			Course:    "Math",
			YearLevel: "3",
			GPA:       1.75,
			CreatedAt: "2024-03-02 09:30:00",
			UpdatedAt: "2024-03-02 11:45:00",
		},
	}
}

func TestNewCreatesEmptyFile(t *testing.T) {
	store, path := newTestStore(t)

	_, err := os.Stat(path)
	require.NoError(t, err)

	students, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(sampleStudents()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleStudents(), loaded)
}

// save ∘ load is idempotent for this format: rewriting what was read
// reproduces the file byte for byte.
func TestSaveLoadIdempotent(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Save(sampleStudents()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.Remove(path))

	students, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestLoadRecoversFromCorruption(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"student_id": "1a2b3c4d",`},
		{"root not a list", `{"student_id": "1a2b3c4d"}`},
		{"plain text", "not json at all"},
		{"null root", "null"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			students, err := store.Load()
			require.NoError(t, err)
			assert.NotNil(t, students)
			assert.Empty(t, students)
		})
	}
}
