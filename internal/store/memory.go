package store

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// MemoryStore implements ddindex.ObjectStore for tests. Repositories are
// populated with AddObject; directory entries are derived from object
// paths the way lakeFS derives common prefixes, with directory paths
// carrying a trailing slash.
type MemoryStore struct {
	repos map[string]*memoryRepo
}

type memoryRepo struct {
	objects map[string]string // full path -> content

	// rawEntries are injected verbatim into listings of their parent,
	// letting tests exercise the unknown-entry-type fatal path.
	rawEntries []ddindex.ObjectEntry
}

// NewMemoryStore creates an empty in-memory object store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		repos: make(map[string]*memoryRepo),
	}
}

// AddObject adds one object to a repository, creating the repository on
// first use. The fixture serves the same tree for every ref.
func (m *MemoryStore) AddObject(repository, path, content string) {
	repo := m.repos[repository]
	if repo == nil {
		repo = &memoryRepo{objects: make(map[string]string)}
		m.repos[repository] = repo
	}
	repo.objects[path] = content
}

// AddRawEntry injects a listing entry with an arbitrary type, for tests
// that need the store to report something other than an object or a
// directory.
func (m *MemoryStore) AddRawEntry(repository, path string, entryType ddindex.EntryType) {
	repo := m.repos[repository]
	if repo == nil {
		repo = &memoryRepo{objects: make(map[string]string)}
		m.repos[repository] = repo
	}
	repo.rawEntries = append(repo.rawEntries, ddindex.ObjectEntry{Path: path, Type: entryType})
}

// List returns the immediate children of path, directories first derived
// from deeper objects, in deterministic sorted order.
func (m *MemoryStore) List(ctx context.Context, repository, ref, path string) ([]ddindex.ObjectEntry, error) {
	repo := m.repos[repository]
	if repo == nil {
		return nil, fmt.Errorf("%w: repository %q not found", ddindex.ErrConnectionFailed, repository)
	}

	if path != "" && !strings.HasSuffix(path, "/") {
		return nil, fmt.Errorf("not a directory: %q", path)
	}

	seen := make(map[string]ddindex.EntryType)
	for objPath := range repo.objects {
		if !strings.HasPrefix(objPath, path) {
			continue
		}
		rest := objPath[len(path):]
		if rest == "" {
			continue
		}
		if i := strings.Index(rest, "/"); i >= 0 {
			seen[path+rest[:i+1]] = ddindex.EntryTypeDirectory
		} else {
			seen[objPath] = ddindex.EntryTypeObject
		}
	}

	entries := make([]ddindex.ObjectEntry, 0, len(seen))
	for entryPath, entryType := range seen {
		entries = append(entries, ddindex.ObjectEntry{Path: entryPath, Type: entryType})
	}
	for _, raw := range repo.rawEntries {
		parent := ""
		if i := strings.LastIndex(strings.TrimSuffix(raw.Path, "/"), "/"); i >= 0 {
			parent = raw.Path[:i+1]
		}
		if parent == path {
			entries = append(entries, raw)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

// Open returns the content of the object at path.
func (m *MemoryStore) Open(ctx context.Context, repository, ref, path string) (io.ReadCloser, error) {
	repo := m.repos[repository]
	if repo == nil {
		return nil, fmt.Errorf("%w: repository %q not found", ddindex.ErrConnectionFailed, repository)
	}

	content, ok := repo.objects[path]
	if !ok {
		return nil, fmt.Errorf("object %q not found in repository %q", path, repository)
	}

	return io.NopCloser(strings.NewReader(content)), nil
}

// Verify MemoryStore implements the interface at compile time
var _ ddindex.ObjectStore = (*MemoryStore)(nil)
