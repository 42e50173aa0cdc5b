// Package index accumulates parsed studies across repositories and
// answers the two questions the reports ask of them: which study
// identifiers appear more than once within a single repository, and
// which repositories carry which studies.
//
// The index is append-only and deliberately tolerant: recording the
// same study identifier from several files is not an error here, it is
// the finding the duplicate report exists to surface.
package index
