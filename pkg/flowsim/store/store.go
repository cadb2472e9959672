// Package store provides persistent storage for named flow documents.
package store

import (
	"errors"
	"time"
)

// Store persists serialized flow documents by name.
// Implementations must be safe for concurrent use.
//
// The stored bytes are opaque to the store; callers serialize documents
// with the flowsim codec before saving and validate after loading.
type Store interface {
	// Save stores a document under a name, overwriting any previous
	// revision and bumping the revision counter.
	Save(name string, data []byte) error

	// Load retrieves the latest revision of a named document.
	// Returns ErrNotFound if the name is unknown.
	Load(name string) ([]byte, error)

	// List returns metadata for all stored documents, ordered by name.
	// Returns an empty slice (not an error) when the store is empty.
	List() ([]Info, error)

	// Delete removes a named document.
	// Returns nil if the name is unknown.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides document metadata without loading the document itself.
type Info struct {
	Name      string
	Revision  int
	UpdatedAt time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no document exists under the given name.
	ErrNotFound = errors.New("flow not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("flow store closed")
)
