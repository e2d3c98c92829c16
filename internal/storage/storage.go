// Package storage defines the Storage interface — the contract any
// flat-file backend must satisfy — plus the factory that picks a backend
// from configuration.
//
// WHY AN INTERFACE?
// ─────────────────
// The service layer should not know or care how the collection is encoded
// on disk. By depending only on this interface:
//
//   - Switching formats = implement the interface for the new encoding,
//     add one case to the factory. Zero service changes.
//
//   - Writing tests = pass an in-memory fake that satisfies the interface.
//     No real file needed for unit tests.
//
// RECOVERY POLICY — "empty-on-parse-failure":
// ────────────────────────────────────────────
// Every backend shares one deliberate recovery strategy: a missing file,
// malformed syntax, or a root that is not a list all load as an EMPTY
// collection with a nil error. A corrupted file is treated as data loss,
// not flagged to the operator — simplicity over safety, chosen on purpose
// and asserted by the backend tests. Only genuine I/O failures (e.g. a
// permission error) surface as errors.
package storage

import (
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/storage/jsonfile"
	"github.com/aanand-mishra/student-records/internal/storage/xmlfile"
	"github.com/aanand-mishra/student-records/internal/types"
)

// Supported values of config.Config.StorageFormat.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ErrUnknownFormat is returned by New for an unrecognised storage format.
// Unknown values are rejected outright rather than falling through to a
// default encoding.
var ErrUnknownFormat = errors.New("unknown storage format")

// Storage is the flat-file contract. There are no per-record operations:
// every caller works with the whole collection, load → mutate → save.
type Storage interface {
	// Load reads the entire backing file and returns the collection in
	// file order. Per the recovery policy above, corruption and absence
	// yield an empty (non-nil) slice and a nil error.
	Load() ([]types.Student, error)

	// Save serialises the full collection back to the file, overwriting
	// it entirely. There is no atomic rename — a crash mid-write can
	// truncate the file, which the next Load treats as empty.
	Save(students []types.Student) error
}

// New returns the backend selected by cfg.StorageFormat.
// The backend constructor ensures the containing directory exists and
// creates the file holding an empty collection when it is absent.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageFormat {
	case FormatJSON:
		return jsonfile.New(cfg)
	case FormatXML:
		return xmlfile.New(cfg)
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)",
			ErrUnknownFormat, cfg.StorageFormat, FormatJSON, FormatXML)
	}
}
