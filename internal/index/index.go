package index

import (
	"sort"

	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// Index is an in-memory map from study identifier to every parsed copy
// of that study, across all walked repositories. It is not safe for
// concurrent use; the walk that feeds it is sequential.
type Index struct {
	studies map[string][]*ddindex.Study
}

// New creates an empty index.
func New() *Index {
	return &Index{
		studies: make(map[string][]*ddindex.Study),
	}
}

// Record appends one parsed study under its identifier. Studies are
// kept in recording order, which the sequential walk makes
// deterministic.
func (ix *Index) Record(study *ddindex.Study) {
	ix.studies[study.StudyID] = append(ix.studies[study.StudyID], study)
}

// StudiesFor returns every recorded copy of the identified study, in
// recording order. Unknown identifiers yield a nil slice.
func (ix *Index) StudiesFor(studyID string) []*ddindex.Study {
	return ix.studies[studyID]
}

// StudyIDs returns every recorded study identifier in ascending order.
func (ix *Index) StudyIDs() []string {
	ids := make([]string, 0, len(ix.studies))
	for id := range ix.studies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Duplicates returns, for each study identifier that appears at more
// than one distinct file path within a single repository, the sorted
// union of file paths from every repository where that happens.
// Identifiers shared across repositories but unique within each are not
// duplicates.
func (ix *Index) Duplicates() map[string][]string {
	duplicates := make(map[string][]string)

	for id, copies := range ix.studies {
		pathsByRepo := make(map[string]map[string]struct{})
		for _, study := range copies {
			paths := pathsByRepo[study.Repository]
			if paths == nil {
				paths = make(map[string]struct{})
				pathsByRepo[study.Repository] = paths
			}
			paths[study.Filepath] = struct{}{}
		}

		offending := make(map[string]struct{})
		for _, paths := range pathsByRepo {
			if len(paths) < 2 {
				continue
			}
			for path := range paths {
				offending[path] = struct{}{}
			}
		}
		if len(offending) == 0 {
			continue
		}

		union := make([]string, 0, len(offending))
		for path := range offending {
			union = append(union, path)
		}
		sort.Strings(union)
		duplicates[id] = union
	}

	return duplicates
}
