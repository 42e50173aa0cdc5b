package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/helxplatform/ddindex/internal/index"
)

// WriteDuplicates renders the duplicate report of ix as an indented
// JSON object on w. Keys are the colliding study identifiers in
// ascending order; values are the sorted offending file paths. A clean
// index renders as {}.
func WriteDuplicates(w io.Writer, ix *index.Index) (int, error) {
	duplicates := ix.Duplicates()

	// json.Marshal sorts map keys, which is exactly the required key
	// ordering.
	data, err := json.MarshalIndent(duplicates, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding duplicate report: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return 0, fmt.Errorf("writing duplicate report: %w", err)
	}

	return len(duplicates), nil
}
