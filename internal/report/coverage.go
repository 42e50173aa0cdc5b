package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/helxplatform/ddindex/internal/index"
	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// WriteCoverage renders the coverage matrix of ix as CSV on w. The
// header is HDPID, repository_count, then one column per repository in
// the order given; rows are emitted per distinct study identifier in
// ascending order. A cell summarizes what the repository contributed
// for that identifier, or is empty when it contributed nothing;
// repository_count is the number of non-empty cells in the row.
func WriteCoverage(w io.Writer, ix *index.Index, repos []ddindex.RepositoryRef) error {
	writer := csv.NewWriter(w)

	header := []string{"HDPID", "repository_count"}
	for _, repo := range repos {
		header = append(header, repo.Name)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing coverage header: %w", err)
	}

	for _, id := range ix.StudyIDs() {
		cells := make([]string, 0, len(repos))
		covered := 0
		for _, repo := range repos {
			cell := coverageCell(ix.StudiesFor(id), repo.Name)
			if cell != "" {
				covered++
			}
			cells = append(cells, cell)
		}

		row := append([]string{id, fmt.Sprintf("%d", covered)}, cells...)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing coverage row for %s: %w", id, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing coverage matrix: %w", err)
	}
	return nil
}

// coverageCell summarizes the studies a repository contributed for one
// identifier, or returns "" when it contributed none.
func coverageCell(studies []*ddindex.Study, repository string) string {
	dds := 0
	sections := 0
	variables := 0
	for _, study := range studies {
		if study.Repository != repository {
			continue
		}
		dds++
		sections += len(study.Sections)
		variables += study.VariableCount()
	}
	if dds == 0 {
		return ""
	}
	return fmt.Sprintf("%d DDs containing %d sections containing %d variables", dds, sections, variables)
}
