package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ddindex",
	Short: "Cross-repository data dictionary indexer",
	Long: `ddindex walks lakeFS repositories full of dbGaP XML data dictionaries,
builds an in-memory index keyed by study identifier, and reports on it:
either the study IDs that collide within a single repository, or a
coverage matrix showing which repositories carry which studies.

Connection settings are resolved the way lakectl resolves them:
LAKECTL_SERVER_ENDPOINT_URL / LAKECTL_CREDENTIALS_* environment
variables (a .env file in the working directory is honored), falling
back to ~/.lakectl.yaml.

Exit Codes:
  0  - Success (no duplicates found)
  N  - duplicates: number of duplicate study IDs found
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Object store connection failed
  12 - Malformed data dictionary XML`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for ddindex")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
