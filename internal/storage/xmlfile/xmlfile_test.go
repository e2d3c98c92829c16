package xmlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/types"
)

func newTestStore(t *testing.T) (*XMLFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "students.xml")
	store, err := New(&config.Config{DataFile: path})
	require.NoError(t, err)
	return store, path
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

	original := types.Student{
		StudentID: "1a2b3c4d",
		Name:      "Ana Cruz",
		Email:     "ana@example.com",
		Course:    "CS",
		YearLevel: "2",
		GPA:       3.5,
		CreatedAt: "2024-03-01 10:00:00",
		UpdatedAt: "2024-03-01 10:00:00",
	}
	require.NoError(t, store.Save([]types.Student{original}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	// GPA goes to disk as element text, so compare it within tolerance;
	// every other field round-trips as its string representation.
	assert.InDelta(t, original.GPA, loaded[0].GPA, 1e-9)
	loaded[0].GPA = original.GPA
	assert.Equal(t, original, loaded[0])
}

func TestLoadDefaultsBadGPAToZero(t *testing.T) {
	store, path := newTestStore(t)

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<students>
  <student>
    <student_id>1a2b3c4d</student_id>
    <name>Ana Cruz</name>
    <email>ana@example.com</email>
    <course>CS</course>
    <year_level>2</year_level>
    <gpa>abc</gpa>
    <created_at>2024-03-01 10:00:00</created_at>
    <updated_at>2024-03-01 10:00:00</updated_at>
  </student>
</students>
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	students, err := store.Load()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ana Cruz", students[0].Name)
	assert.Zero(t, students[0].GPA)
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
		{"malformed xml", `<students><student><name>Ana`},
		{"wrong root element", `<notstudents></notstudents>`},
		{"plain text", "not xml at all"},
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
