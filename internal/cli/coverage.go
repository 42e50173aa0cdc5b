package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/helxplatform/ddindex/internal/report"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Emit a per-repository study coverage matrix",
	Long: `Walk the given repositories and emit a CSV matrix showing, for every
study ID found anywhere, which repositories carry it and how much each
contributed.

The header is HDPID, repository_count, then one column per repository
in the order given on the command line. A cell summarizes the
dictionaries a repository contributed for that study, or is empty when
it contributed none; repository_count is the number of non-empty cells.
Rows are sorted by study ID.

Examples:
  # Matrix across three repositories, to stdout
  ddindex coverage -r heal-studies -r bdc-studies -r anvil-studies

  # Write the matrix to a file
  ddindex coverage -r heal-studies -r bdc-studies -o coverage.csv`,
	RunE: runCoverage,
}

var (
	coverageRepositories []string
	coverageOutput       string
)

func init() {
	rootCmd.AddCommand(coverageCmd)
	coverageCmd.Flags().StringArrayVarP(&coverageRepositories, "repository", "r", nil,
		"Repository to walk, as name or name:ref (repeatable)")
	coverageCmd.Flags().StringVarP(&coverageOutput, "output", "o", "-",
		"Output file path, or - for stdout")
	coverageCmd.MarkFlagRequired("repository")
}

// runCoverage walks the repositories and writes the coverage matrix.
func runCoverage(cmd *cobra.Command, args []string) error {
	env, err := newRunEnvironment(cmd, coverageRepositories)
	if err != nil {
		return err
	}

	ix, err := env.indexer.Run(cmd.Context(), env.repos)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(coverageOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := report.WriteCoverage(out, ix, env.repos); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, styled(successStyle,
		fmt.Sprintf("✓ Coverage matrix for %d study ID(s) across %d repositories", len(ix.StudyIDs()), len(env.repos))))
	return nil
}

// openOutput resolves the -o flag: "-" is stdout, anything else is a
// file created or truncated at that path.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return f, f.Close, nil
}
