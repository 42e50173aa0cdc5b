package walker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// VisitFunc receives the path and content of one XML object. The walker
// owns the reader and closes it after the callback returns.
type VisitFunc func(path string, content io.Reader) error

// node is one listing entry lifted into its traversal role.
type node interface {
	nodePath() string
}

// directoryNode is a prefix the traversal recurses into.
type directoryNode struct {
	path string
}

// leafNode is an object whose content can be opened.
type leafNode struct {
	path string
}

func (n directoryNode) nodePath() string { return n.path }
func (n leafNode) nodePath() string      { return n.path }

// lift classifies one raw listing entry. Types other than object and
// directory are an error rather than a silent skip.
func lift(entry ddindex.ObjectEntry) (node, error) {
	switch entry.Type {
	case ddindex.EntryTypeDirectory:
		return directoryNode{path: entry.Path}, nil
	case ddindex.EntryTypeObject:
		return leafNode{path: entry.Path}, nil
	default:
		return nil, fmt.Errorf("%w: entry type %q at %q", ddindex.ErrUnknownObjectType, entry.Type, entry.Path)
	}
}

// Walker performs depth-first traversals of repository object trees.
type Walker struct {
	store  ddindex.ObjectStore
	logger ddindex.Logger
}

// New creates a Walker over the given store.
func New(store ddindex.ObjectStore, logger ddindex.Logger) *Walker {
	return &Walker{
		store:  store,
		logger: logger,
	}
}

// Walk traverses repo depth-first from its root and calls visit for
// every XML object. Any store error, unknown entry type, or callback
// error aborts the traversal immediately.
func (w *Walker) Walk(ctx context.Context, repo ddindex.RepositoryRef, visit VisitFunc) error {
	return w.walkPrefix(ctx, repo, "", visit)
}

func (w *Walker) walkPrefix(ctx context.Context, repo ddindex.RepositoryRef, prefix string, visit VisitFunc) error {
	entries, err := w.store.List(ctx, repo.Name, repo.Ref, prefix)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		n, err := lift(entry)
		if err != nil {
			return fmt.Errorf("walking %s: %w", repo.String(), err)
		}

		switch n := n.(type) {
		case directoryNode:
			w.logger.Verbose("descending into %s/%s", repo.Name, n.path)
			if err := w.walkPrefix(ctx, repo, n.path, visit); err != nil {
				return err
			}
		case leafNode:
			if !isXMLPath(n.path) {
				w.logger.Verbose("skipping non-XML object %s/%s", repo.Name, n.path)
				continue
			}
			if err := w.visitLeaf(ctx, repo, n.path, visit); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *Walker) visitLeaf(ctx context.Context, repo ddindex.RepositoryRef, path string, visit VisitFunc) error {
	content, err := w.store.Open(ctx, repo.Name, repo.Ref, path)
	if err != nil {
		return err
	}
	defer content.Close()

	return visit(path, content)
}

// isXMLPath reports whether path names an XML file. The extension match
// is case-insensitive because the producing pipelines are not consistent
// about casing.
func isXMLPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xml")
}
