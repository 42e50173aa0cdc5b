package indexer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/helxplatform/ddindex/internal/checksum"
	"github.com/helxplatform/ddindex/internal/dbgap"
	"github.com/helxplatform/ddindex/internal/index"
	"github.com/helxplatform/ddindex/internal/walker"
	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// Indexer builds a cross-repository index from the dictionaries found
// in an object store.
type Indexer struct {
	store    ddindex.ObjectStore
	checksum checksum.Calculator
	logger   ddindex.Logger
}

// New creates an Indexer reading from the given store.
func New(store ddindex.ObjectStore, calc checksum.Calculator, logger ddindex.Logger) *Indexer {
	return &Indexer{
		store:    store,
		checksum: calc,
		logger:   logger,
	}
}

// Run walks every repository in argument order and returns the
// populated index. The first store, parse, or read error aborts the
// run; a partially-built index is never returned.
func (ix *Indexer) Run(ctx context.Context, repos []ddindex.RepositoryRef) (*index.Index, error) {
	runID := uuid.NewString()
	ix.logger.Verbose("indexing run %s over %d repositories", runID, len(repos))

	result := index.New()
	walk := walker.New(ix.store, ix.logger)

	for _, repo := range repos {
		ix.logger.Info("indexing %s", repo.String())
		files := 0

		err := walk.Walk(ctx, repo, func(path string, content io.Reader) error {
			study, err := ix.indexFile(repo, path, content)
			if err != nil {
				return err
			}
			result.Record(study)
			files++
			return nil
		})
		if err != nil {
			return nil, err
		}

		ix.logger.Verbose("run %s: %s yielded %d dictionaries", runID, repo.String(), files)
	}

	return result, nil
}

func (ix *Indexer) indexFile(repo ddindex.RepositoryRef, path string, content io.Reader) (*ddindex.Study, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", repo.Name, path, err)
	}

	study, err := dbgap.Parse(data, repo.Name, path)
	if err != nil {
		return nil, err
	}

	study.Checksum = ix.checksum.CalculateRaw(data)
	study.ChecksumNormalized = ix.checksum.CalculateNormalized(data)

	ix.logger.Verbose("parsed %s/%s: study %s, %d variables",
		repo.Name, path, study.StudyID, study.VariableCount())

	return study, nil
}
