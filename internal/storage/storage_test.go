package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/storage/jsonfile"
	"github.com/aanand-mishra/student-records/internal/storage/xmlfile"
)

func TestNewSelectsBackendByFormat(t *testing.T) {
	dir := t.TempDir()

	jsonStore, err := New(&config.Config{
		DataFile:      filepath.Join(dir, "students.json"),
		StorageFormat: FormatJSON,
	})
	require.NoError(t, err)
	assert.IsType(t, &jsonfile.JSONFile{}, jsonStore)

	xmlStore, err := New(&config.Config{
		DataFile:      filepath.Join(dir, "students.xml"),
		StorageFormat: FormatXML,
	})
	require.NoError(t, err)
	assert.IsType(t, &xmlfile.XMLFile{}, xmlStore)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	for _, format := range []string{"", "yaml", "JSON", "xml "} {
		_, err := New(&config.Config{
			DataFile:      filepath.Join(t.TempDir(), "students.dat"),
			StorageFormat: format,
		})
		assert.ErrorIs(t, err, ErrUnknownFormat, "format %q", format)
	}
}
