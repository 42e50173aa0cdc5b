package ddindex

import (
	"context"
	"io"
)

// EntryType classifies one entry of a repository object listing as
// reported by the backing object store.
type EntryType string

const (
	// EntryTypeObject is a leaf blob readable as text.
	EntryTypeObject EntryType = "object"

	// EntryTypeDirectory is a listable prefix that can be recursed into.
	EntryTypeDirectory EntryType = "directory"
)

// ObjectEntry is one entry returned by ObjectStore.List. Type carries the
// raw wire classification; callers must treat any value other than
// EntryTypeObject and EntryTypeDirectory as a fatal condition rather than
// guessing.
type ObjectEntry struct {
	Path string
	Type EntryType
}

// ObjectStore is the read-only object store a traversal runs against.
// Implementations are pre-authenticated; credential resolution happens
// before an ObjectStore is constructed.
type ObjectStore interface {
	// List returns the immediate children of path within repository at
	// ref. The root of a repository is listed with an empty path.
	List(ctx context.Context, repository, ref, path string) ([]ObjectEntry, error)

	// Open returns the content of the object at path. The caller owns the
	// returned reader and must close it.
	Open(ctx context.Context, repository, ref, path string) (io.ReadCloser, error)
}
