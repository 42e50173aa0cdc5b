package ddindex

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// The duplicates command additionally exits with the number of duplicate
// study IDs found, so automation can treat any non-zero exit as "fix your
// upstream sources".
const (
	ExitSuccess         = 0  // Run completed, no duplicates found
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid or missing lakeFS configuration
	ExitConnectionError = 11 // Failed to reach the object store
	ExitParseError      = 12 // A repository contains invalid dbGaP XML
)

const (
	// DefaultRef is the branch or tag used when a repository reference
	// does not name one (e.g. "heal-mds-import" vs "heal-mds-import:v3").
	DefaultRef = "main"

	// NoneSection is the sentinel section name for variables that carry
	// no section, module, or dd_id attribute.
	NoneSection = "none"

	// DefaultRetryInitialDelay is the default initial delay before the first
	// retry of a transient object store request.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retries.
	DefaultRetryMaxDelay = 30 * time.Second

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts
	// for a transient object store request.
	DefaultRetryMaxAttempts = 3
)
