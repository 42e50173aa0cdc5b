package ddindex

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := run(ctx, repos)
//	if errors.Is(err, ddindex.ErrConnectionFailed) {
//	    // object store unreachable; nothing was reported
//	}
var (
	// ErrInvalidConfig indicates the lakeFS configuration is missing or invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the object store could not be reached.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnknownObjectType indicates a repository listing returned an entry
	// type other than object or directory, which means the storage client
	// API changed underneath us.
	ErrUnknownObjectType = errors.New("unknown object type")

	// ErrInvalidXML indicates a file could not be indexed because its
	// dbGaP XML structure is invalid. This is always fatal for the whole
	// run: an index that silently skipped a file could hide exactly the
	// duplicate it exists to find.
	ErrInvalidXML = errors.New("invalid dbGaP XML")
)

// DuplicateStudyIDsError reports how many study IDs were found at more
// than one file path within a single repository. It is not a failure of
// the run itself; it exists so the process can exit with the duplicate
// count, which is the success/failure signal consumed by automation.
type DuplicateStudyIDsError struct {
	Count int
}

func (e *DuplicateStudyIDsError) Error() string {
	return fmt.Sprintf("found %d duplicate study IDs", e.Count)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, the duplicate count for
// DuplicateStudyIDsError, semantic codes for known errors, and
// ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var dup *DuplicateStudyIDsError
	if errors.As(err, &dup) {
		return dup.Count
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrUnknownObjectType):
		return ExitConnectionError
	case errors.Is(err, ErrInvalidXML):
		return ExitParseError
	}

	// cobra reports flag and argument misuse as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts ") {
		return ExitUsageError
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
