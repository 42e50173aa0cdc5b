package dbgap

import (
	"encoding/xml"
	"fmt"

	"github.com/helxplatform/ddindex/pkg/ddindex"
)

// ParseError reports a structural defect in one dbGaP XML file. It names
// the repository and file so the upstream generator that produced the
// defect can be found and fixed.
type ParseError struct {
	Repository string // Repository the file came from
	Path       string // File path within the repository
	Line       int    // Line number (0 if unknown)
	Message    string // Primary error message
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	location := e.Path
	if e.Repository != "" {
		location = e.Repository + "/" + e.Path
	}
	if e.Line > 0 {
		return fmt.Sprintf("invalid dbGaP XML in %s (line %d): %s", location, e.Line, e.Message)
	}
	return fmt.Sprintf("invalid dbGaP XML in %s: %s", location, e.Message)
}

// Unwrap lets callers classify any parse failure with
// errors.Is(err, ddindex.ErrInvalidXML).
func (e *ParseError) Unwrap() error {
	return ddindex.ErrInvalidXML
}

// wrapXMLError converts xml package errors to ParseError with line numbers.
func wrapXMLError(err error, repository, path string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &ParseError{
			Repository: repository,
			Path:       path,
			Line:       int(syntaxErr.Line),
			Message:    syntaxErr.Msg,
		}
	}

	return &ParseError{
		Repository: repository,
		Path:       path,
		Message:    err.Error(),
	}
}
