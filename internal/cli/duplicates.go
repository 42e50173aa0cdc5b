package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helxplatform/ddindex/internal/index"
	"github.com/helxplatform/ddindex/internal/report"
	"github.com/helxplatform/ddindex/pkg/ddindex"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Report study IDs duplicated within a repository",
	Long: `Walk the given repositories and report every study ID that appears at
more than one file path within a single repository.

The report is a JSON object on stdout mapping each duplicate study ID
to the sorted list of offending file paths; {} means the repositories
are clean. The exit code equals the number of duplicate study IDs, so
automation can treat any non-zero exit as a finding.

A study ID that appears once in each of several repositories is not a
duplicate and is not reported.

Examples:
  # Check one repository at its main branch
  ddindex duplicates -r heal-studies

  # Check a tagged snapshot of two repositories
  ddindex duplicates -r heal-studies:v2 -r bdc-studies`,
	RunE: runDuplicates,
}

var duplicatesRepositories []string

func init() {
	rootCmd.AddCommand(duplicatesCmd)
	duplicatesCmd.Flags().StringArrayVarP(&duplicatesRepositories, "repository", "r", nil,
		"Repository to walk, as name or name:ref (repeatable)")
	duplicatesCmd.MarkFlagRequired("repository")
}

// runDuplicates walks the repositories and emits the duplicate report.
func runDuplicates(cmd *cobra.Command, args []string) error {
	env, err := newRunEnvironment(cmd, duplicatesRepositories)
	if err != nil {
		return err
	}

	ix, err := env.indexer.Run(cmd.Context(), env.repos)
	if err != nil {
		return err
	}

	count, err := report.WriteDuplicates(os.Stdout, ix)
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(os.Stderr, styled(successStyle, "✓ No duplicate study IDs found"))
		return nil
	}

	fmt.Fprintln(os.Stderr, styled(warningStyle, fmt.Sprintf("✗ Found %d duplicate study ID(s)", count)))
	describeCollisions(env, ix)

	return &ddindex.DuplicateStudyIDsError{Count: count}
}

// describeCollisions logs, per duplicate study ID, whether the
// colliding files are byte-identical or identical after whitespace
// normalization. That distinction usually tells whether the duplicate
// is a stale copy or a diverged edit.
func describeCollisions(env *runEnvironment, ix *index.Index) {
	for id := range ix.Duplicates() {
		raw := make(map[string]struct{})
		normalized := make(map[string]struct{})
		for _, study := range ix.StudiesFor(id) {
			raw[study.Checksum] = struct{}{}
			normalized[study.ChecksumNormalized] = struct{}{}
		}

		switch {
		case len(raw) == 1:
			env.logger.Verbose("%s: all copies are byte-identical", id)
		case len(normalized) == 1:
			env.logger.Verbose("%s: copies differ only in whitespace", id)
		default:
			env.logger.Verbose("%s: copies have diverged content", id)
		}
	}
}
